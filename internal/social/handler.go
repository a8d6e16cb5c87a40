package social

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=social_mocks_test.go -package=social_test

type postsRepo interface {
	Add(ctx context.Context, userID string, newPost NewPost, createdAt time.Time) (*Post, error)
	ListByUser(ctx context.Context, userID string) ([]Post, error)
	Feed(ctx context.Context, page, limit int) ([]Post, int, error)
	ToggleLike(ctx context.Context, postID, userID string) (*Post, error)
	AddComment(ctx context.Context, postID, userID, text string, createdAt time.Time) (*Post, error)
}

type Handler struct {
	repo           postsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo postsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	socialRouter := mainRouter.PathPrefix("/social").Subrouter()
	socialRouter.HandleFunc("/posts", handler.HandleNewPost).Methods("POST", "OPTIONS").Name("new-post")
	socialRouter.HandleFunc("/posts", handler.HandleMyPosts).Methods("GET").Name("my-posts")
	socialRouter.HandleFunc("/feed", handler.HandleFeed).Methods("GET").Name("feed")
	socialRouter.HandleFunc("/posts/{id}/like", handler.HandleLike).Methods("POST", "OPTIONS").Name("like-post")
	socialRouter.HandleFunc("/posts/{id}/comment", handler.HandleComment).Methods("POST", "OPTIONS").Name("comment-post")
}

func (handler *Handler) HandleNewPost(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.new")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var newPost NewPost
	if err := pkg.DecodeJSONBody(r, &newPost); err != nil {
		log.Errorf("new post, unmarshal json params: %s", err)
		http.Error(w, "add post failed", http.StatusBadRequest)
		return
	}
	if err := newPost.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := handler.repo.Add(ctx, userID, newPost, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrAuthorNotFound) {
			http.Error(w, "could not validate credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("failed to add new post for %s: %s", userID, err)
		http.Error(w, "error, failed to add new post", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecordsCreated.WithLabelValues("post").Inc()
	}

	pkg.WriteJSON(w, post, http.StatusCreated)
}

func (handler *Handler) HandleMyPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.mine")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	posts, err := handler.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Errorf("list posts for %s: %s", userID, err)
		http.Error(w, "failed to get posts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, posts, http.StatusOK)
}

// HandleFeed pages through all posts: page >= 1, 1 <= limit <= 50.
func (handler *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.feed")
	defer span.End()

	if _, ok := auth.RequireUserID(w, r); !ok {
		return
	}

	page, err := intQueryParam(r, "page", 1)
	if err != nil || page < 1 {
		http.Error(w, "page must be a number >= 1", http.StatusBadRequest)
		return
	}
	limit, err := intQueryParam(r, "limit", DefaultFeedLimit)
	if err != nil || limit < 1 || limit > MaxFeedLimit {
		http.Error(w, "limit must be a number between 1 and 50", http.StatusBadRequest)
		return
	}
	// keeps the page offset within a postgres int4
	if page > math.MaxInt32/limit {
		http.Error(w, "page out of range", http.StatusBadRequest)
		return
	}

	posts, total, err := handler.repo.Feed(ctx, page, limit)
	if err != nil {
		log.Errorf("get feed page %d: %s", page, err)
		http.Error(w, "failed to get feed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, NewFeed(posts, page, limit, total), http.StatusOK)
}

func (handler *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.like")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	postID := mux.Vars(r)["id"]
	post, err := handler.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		handler.writeRepoError(w, "like", postID, err)
		return
	}

	pkg.WriteJSON(w, post, http.StatusOK)
}

func (handler *Handler) HandleComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.comment")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var commentReq struct {
		Text string `json:"text"`
	}
	if err := pkg.DecodeJSONBody(r, &commentReq); err != nil {
		log.Errorf("new comment, unmarshal json params: %s", err)
		http.Error(w, "add comment failed", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(commentReq.Text)
	if text == "" {
		http.Error(w, "comment text is required", http.StatusBadRequest)
		return
	}

	postID := mux.Vars(r)["id"]
	post, err := handler.repo.AddComment(ctx, postID, userID, text, time.Now().UTC())
	if err != nil {
		handler.writeRepoError(w, "comment", postID, err)
		return
	}

	pkg.WriteJSON(w, post, http.StatusOK)
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op, id string, err error) {
	if errors.Is(err, ErrPostNotFound) {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s post %s: %s", op, id, err)
	http.Error(w, "error, failed to "+op+" post", http.StatusInternalServerError)
}

func intQueryParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
