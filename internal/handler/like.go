package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Roopikasri/Forum-form/internal/domain"
	"github.com/Roopikasri/Forum-form/internal/service"
)

// LikeHandler handles like requests against posts.
type LikeHandler struct {
	likes *service.LikeService
	posts *service.PostService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likes *service.LikeService, posts *service.PostService) *LikeHandler {
	return &LikeHandler{likes: likes, posts: posts}
}

// HandleLike records a like of the post by the authenticated user.
// POST /api/posts/{id}/like
// Response: {"status":"liked","post":{...}} or {"status":"already_liked","post":{...}}
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id.")
		return
	}

	if _, err := h.posts.GetPost(r.Context(), postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("get post before like", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	outcome, err := h.likes.LikePost(r.Context(), user.ID, postID)
	if err != nil {
		slog.Error("like post", "error", err, "post_id", postID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	post, err := h.posts.GetPost(r.Context(), postID)
	if err != nil {
		slog.Error("get post after like", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": string(outcome),
		"post":   toPostDTO(post),
	})
}
