//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/social"
)

func (s *IntegrationTestSuite) TestSocial_PostLikeComment() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	author := s.registerUser(ctx)
	fan := s.registerUser(ctx)

	var post social.Post
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/social/posts", author.token, map[string]any{
		"content": "Hit a new deadlift PR today",
		"type":    "achievement",
	}), http.StatusCreated, &post)
	require.NotEmpty(t, post.ID)
	assert.Equal(t, author.Name, post.UserName)
	assert.Empty(t, post.Likes)

	likePath := "/social/posts/" + post.ID + "/like"
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, likePath, fan.token, nil), http.StatusOK, &post)
	assert.Equal(t, []string{fan.ID}, post.Likes)

	// second like from the same user takes it back
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, likePath, fan.token, nil), http.StatusOK, &post)
	assert.Empty(t, post.Likes)

	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/social/posts/"+post.ID+"/comment", fan.token, map[string]string{
		"text": "Congrats!",
	}), http.StatusOK, &post)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, fan.Name, post.Comments[0].UserName)
	assert.Equal(t, "Congrats!", post.Comments[0].Text)

	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/social/posts/unknown-post/like", fan.token, nil), http.StatusNotFound, nil)

	var mine []social.Post
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/social/posts", author.token, nil), http.StatusOK, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, post.ID, mine[0].ID)
}

func (s *IntegrationTestSuite) TestSocial_FeedPaging() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)
	for i := 0; i < 3; i++ {
		s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/social/posts", user.token, map[string]any{
			"content": "post",
		}), http.StatusCreated, nil)
	}

	var feed social.Feed
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/social/feed?page=1&limit=2", user.token, nil), http.StatusOK, &feed)
	assert.Len(t, feed.Posts, 2)
	assert.Equal(t, 1, feed.CurrentPage)
	assert.GreaterOrEqual(t, feed.Total, 3)
	assert.GreaterOrEqual(t, feed.TotalPages, 2)

	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/social/feed?limit=51", user.token, nil), http.StatusBadRequest, nil)
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/social/feed?page=0", user.token, nil), http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestAI_FallbacksWithoutProviders() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)

	var foods map[string][]map[string]any
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/ai/food-database", user.token, nil), http.StatusOK, &foods)
	assert.Len(t, foods["foods"], 20)

	var prediction map[string]any
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/ai/predict-calories", user.token, map[string]any{
		"age": 30, "gender": "male", "weight": 80, "height": 180,
		"activity_level": "moderate", "goal": "maintain",
	}), http.StatusOK, &prediction)
	assert.Contains(t, prediction, "bmr")
	assert.Contains(t, prediction, "tdee")
}
