// Package routes wires controllers and middleware into the HTTP router.
package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"faredash/app/controllers"
	"faredash/app/metrics"
	"faredash/app/middleware"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(dc *controllers.DashboardController, m *metrics.Metrics) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware. Metrics must wrap Recoverer to see 500s.
	global := []mux.MiddlewareFunc{
		middleware.RequestID,
		middleware.Logger,
		middleware.Metrics(m),
		middleware.Recoverer,
	}
	router.Use(global...)

	// mux bypasses router middleware for these two handlers.
	router.NotFoundHandler = chain(http.HandlerFunc(notFound), global)
	router.MethodNotAllowedHandler = chain(http.HandlerFunc(methodNotAllowed), global)

	// Web routes
	router.HandleFunc("/", dc.Show).Methods("GET")
	router.HandleFunc("/healthz", dc.Health).Methods("GET")
	router.Handle("/metrics", m.Handler()).Methods("GET")

	// API routes with JSON content type. Kept flat: a PathPrefix subrouter
	// answers method mismatches with 404.
	api := func(path string, h http.HandlerFunc, method string) {
		router.Handle("/api"+path, middleware.ContentTypeJSON(h)).Methods(method)
	}
	api("/dashboard", dc.Dashboard, "GET")
	api("/comments", dc.Comments, "GET")
	api("/counts", dc.Counts, "GET")
	api("/trends", dc.Trends, "GET")
	api("/classify", dc.Classify, "POST")
	api("/dataset/regenerate", dc.Regenerate, "POST")

	return router
}

// chain wraps h in mws, first entry outermost.
func chain(h http.Handler, mws []mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "Not found", http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
}
