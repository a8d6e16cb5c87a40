package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrAuthorNotFound = errors.New("post author not found")
)

const (
	MaxListSize = 100

	postColumns = `p.id, p.user_id, p.user_name, p.content, p.type, p.likes, p.comments, p.created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the post under the author's current name.
func (r *Repo) Add(ctx context.Context, userID string, newPost NewPost, createdAt time.Time) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err = pkg.CanonicalID(userID)
	if err != nil {
		return nil, err
	}
	id := pkg.NewID()
	span.SetAttributes(attribute.String("post.id", id))

	row := r.db.QueryRow(
		ctx,
		`
			INSERT INTO social_post AS p (id, user_id, user_name, content, type, created_at)
				SELECT $1, u.id, u.name, $3, $4, $5 FROM users u WHERE u.id = $2
			RETURNING `+postColumns+`;`,
		id, userID, newPost.Content, newPost.Type, createdAt,
	)
	post, err := scanPost(row)
	if errors.Is(err, ErrPostNotFound) || pkg.IsForeignKeyViolationError(err) {
		return nil, ErrAuthorNotFound
	}
	return post, err
}

func (r *Repo) ListByUser(ctx context.Context, userID string) (_ []Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.listByUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err = pkg.CanonicalID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+postColumns+` FROM social_post p WHERE p.user_id = $1 ORDER BY p.created_at DESC LIMIT $2;`,
		userID, MaxListSize,
	)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

// Feed returns one page of everyone's posts, newest first, and the overall post count.
func (r *Repo) Feed(ctx context.Context, page, limit int) (_ []Post, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.feed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+postColumns+` FROM social_post p ORDER BY p.created_at DESC LIMIT $1 OFFSET $2;`,
		limit, (page-1)*limit,
	)
	if err != nil {
		return nil, 0, err
	}
	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM social_post;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	return posts, total, nil
}

// ToggleLike adds the user to the post likes, or removes them if already there.
func (r *Repo) ToggleLike(ctx context.Context, postID, userID string) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.toggleLike")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	postID, userID, err = postAndUserIDs(postID, userID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("post.id", postID))

	row := r.db.QueryRow(
		ctx,
		`
			UPDATE social_post AS p SET likes = CASE
					WHEN $2::text = ANY(p.likes) THEN array_remove(p.likes, $2::text)
					ELSE array_append(p.likes, $2::text)
				END
			WHERE p.id = $1
			RETURNING `+postColumns+`;`,
		postID, userID,
	)
	return scanPost(row)
}

// AddComment appends a comment signed with the commenter's current name.
func (r *Repo) AddComment(ctx context.Context, postID, userID, text string, createdAt time.Time) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.addComment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	postID, userID, err = postAndUserIDs(postID, userID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("post.id", postID))

	row := r.db.QueryRow(
		ctx,
		`
			UPDATE social_post AS p SET comments = p.comments || jsonb_build_array(jsonb_build_object(
					'user_id', u.id,
					'user_name', u.name,
					'text', $3::text,
					'created_at', $4::timestamptz
				))
			FROM users u
			WHERE p.id = $1 AND u.id = $2
			RETURNING `+postColumns+`;`,
		postID, userID, text, createdAt,
	)
	return scanPost(row)
}

func postAndUserIDs(postID, userID string) (string, string, error) {
	userID, err := pkg.CanonicalID(userID)
	if err != nil {
		return "", "", err
	}
	postID, err = pkg.CanonicalID(postID)
	if err != nil {
		return "", "", ErrPostNotFound
	}
	return postID, userID, nil
}

func collectPosts(rows pgx.Rows) ([]Post, error) {
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func scanPost(row pgx.Row) (*Post, error) {
	var post Post
	var commentsJson []byte
	err := row.Scan(
		&post.ID, &post.UserID, &post.UserName, &post.Content, &post.Type,
		&post.Likes, &commentsJson, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	if err := json.Unmarshal(commentsJson, &post.Comments); err != nil {
		return nil, fmt.Errorf("unmarshal comments: %w", err)
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Comments == nil {
		post.Comments = []Comment{}
	}
	return &post, nil
}
