package handler

import (
	"net/http"

	"github.com/Roopikasri/Forum-form/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Everything under
// /api except registration and login requires authentication.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	posts *service.PostService,
	likes *service.LikeService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	postHandler := NewPostHandler(posts)
	likeHandler := NewLikeHandler(likes, posts)
	profileHandler := NewProfileHandler(auth)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /api/posts", RequireAuth(auth, http.HandlerFunc(postHandler.HandleList)))
	mux.Handle("POST /api/posts", RequireAuth(auth, http.HandlerFunc(postHandler.HandleCreate)))
	mux.Handle("POST /api/posts/{id}/like", RequireAuth(auth, http.HandlerFunc(likeHandler.HandleLike)))

	mux.Handle("GET /api/profile", RequireAuth(auth, http.HandlerFunc(profileHandler.HandleGet)))
	mux.Handle("PUT /api/profile", RequireAuth(auth, http.HandlerFunc(profileHandler.HandleUpdate)))
}
