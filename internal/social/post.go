package social

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultPostType = "general"

	DefaultFeedLimit = 10
	MaxFeedLimit     = 50
)

var PostTypes = map[string]bool{
	"workout":     true,
	"meal":        true,
	"achievement": true,
	"general":     true,
}

type Comment struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

type NewPost struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (np *NewPost) Validate() error {
	if strings.TrimSpace(np.Content) == "" {
		return errors.New("content is required")
	}
	if np.Type == "" {
		np.Type = DefaultPostType
	}
	if !PostTypes[np.Type] {
		return fmt.Errorf("invalid post type: %q", np.Type)
	}
	return nil
}

type Feed struct {
	Posts       []Post `json:"posts"`
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	Total       int    `json:"total"`
}

func NewFeed(posts []Post, page, limit, total int) Feed {
	return Feed{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
		Total:       total,
	}
}
