package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterDependencies bundles the handlers and middleware the router wires
// together.
type RouterDependencies struct {
	Auth          *AuthHandler
	Profile       *ProfileHandler
	Listing       *ListingHandler
	Application   *ApplicationHandler
	Notification  *NotificationHandler
	Resume        *ResumeHandler
	AuthMW        *AuthMiddleware
}

// NewRouter builds the full route table. Listings are publicly readable;
// everything else requires a bearer token. Role checks live in the service
// layer, not here.
func NewRouter(deps RouterDependencies) http.Handler {
	r := mux.NewRouter()
	r.Use(Recover, Logging)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Public routes
	r.HandleFunc("/auth/register", deps.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", deps.Auth.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", deps.Auth.Logout).Methods(http.MethodPost)
	r.HandleFunc("/listings", deps.Listing.List).Methods(http.MethodGet)

	// Authenticated routes
	auth := r.NewRoute().Subrouter()
	auth.Use(deps.AuthMW.Require)
	auth.HandleFunc("/profile", deps.Profile.Get).Methods(http.MethodGet)
	auth.HandleFunc("/profile", deps.Profile.Update).Methods(http.MethodPut)
	auth.HandleFunc("/profile/resume", deps.Resume.Upload).Methods(http.MethodPut)
	auth.HandleFunc("/profile/resume", deps.Resume.Download).Methods(http.MethodGet)
	auth.HandleFunc("/profile/resume", deps.Resume.Delete).Methods(http.MethodDelete)
	auth.HandleFunc("/listings", deps.Listing.Create).Methods(http.MethodPost)
	auth.HandleFunc("/listings/mine", deps.Listing.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/listings/{id:[0-9]+}/apply", deps.Application.Apply).Methods(http.MethodPost)
	auth.HandleFunc("/applications", deps.Application.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/applications/pending", deps.Application.ListPending).Methods(http.MethodGet)
	auth.HandleFunc("/applications/{id:[0-9]+}/decision", deps.Application.Decide).Methods(http.MethodPost)
	auth.HandleFunc("/notifications", deps.Notification.List).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id:[0-9]+}/read", deps.Notification.MarkAsRead).Methods(http.MethodPost)

	// GET /listings/{id} is public but must be registered after
	// /listings/mine so the static path wins.
	r.HandleFunc("/listings/{id:[0-9]+}", deps.Listing.Get).Methods(http.MethodGet)

	return r
}
