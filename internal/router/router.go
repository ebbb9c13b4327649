package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkwell-dev/inkwell/internal/middleware/metrics"
	"github.com/inkwell-dev/inkwell/internal/setup"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// setup CORS for browser clients
	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Auth routes
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register", h.Register).Methods("POST")
	users.HandleFunc("/login", h.Login).Methods("POST")
	users.HandleFunc("/logout", h.Logout).Methods("POST")

	// Logged-in user routes
	loggedIn := api.NewRoute().Subrouter()
	loggedIn.Use(authMw.RequireAuth())

	loggedIn.HandleFunc("/users/profile", h.Profile).Methods("GET")
	loggedIn.HandleFunc("/posts", h.CreatePost).Methods("POST")
	loggedIn.HandleFunc("/posts/{id}", h.UpdatePost).Methods("PUT")
	loggedIn.HandleFunc("/posts/{id}", h.DeletePost).Methods("DELETE")
	loggedIn.HandleFunc("/posts/{postId}/comments", h.CreateComment).Methods("POST")
	loggedIn.HandleFunc("/posts/{postId}/comments/{commentId}", h.UpdateComment).Methods("PUT")
	loggedIn.HandleFunc("/posts/{postId}/comments/{commentId}", h.DeleteComment).Methods("DELETE")

	// Public read routes
	api.HandleFunc("/posts", h.GetPosts).Methods("GET")
	api.HandleFunc("/posts/{id}", h.GetPost).Methods("GET")
	api.HandleFunc("/posts/{postId}/comments", h.GetComments).Methods("GET")

	return r
}
