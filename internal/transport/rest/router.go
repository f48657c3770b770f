package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/outliner-coach/letmeknowme/internal/logger"
	"github.com/outliner-coach/letmeknowme/internal/service"
	"github.com/outliner-coach/letmeknowme/internal/transport/rest/handler"
	"github.com/outliner-coach/letmeknowme/internal/transport/rest/middleware"
	"github.com/outliner-coach/letmeknowme/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	ReportService  *service.ReportService
	ContentService *service.ContentService
	WSHub          *ws.Hub
	Gatherer       prometheus.Gatherer
	Logger         *logger.Logger
	AllowedOrigins string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	reportHandler := handler.NewReportHandler(c.ReportService, c.Logger)
	contentHandler := handler.NewContentHandler(c.ContentService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.ReportService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(middleware.RequestLogger(c.Logger))
	r.Use(corsMiddleware(c.AllowedOrigins))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports", reportHandler.Create).Methods("POST", "OPTIONS")
	v1.Handle("/reports", authMW.RequireHost(http.HandlerFunc(reportHandler.List))).Methods("GET")
	v1.HandleFunc("/reports/{id}", reportHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/reports/{id}/survey", reportHandler.Survey).Methods("GET", "OPTIONS")
	v1.HandleFunc("/reports/{id}/responses", reportHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reports/{id}/status", reportHandler.Status).Methods("GET", "OPTIONS")
	v1.HandleFunc("/content", contentHandler.Get).Methods("GET", "OPTIONS")
	v1.Handle("/content", authMW.RequireHost(http.HandlerFunc(contentHandler.Update))).Methods("PUT")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/reports/{id}", wsHandler.ReportWS).Methods("GET")

	// Requester routes (result link token)
	requesterRoutes := v1.PathPrefix("/reports/{id}").Subrouter()
	requesterRoutes.Use(authMW.RequireRequester)

	requesterRoutes.HandleFunc("/analysis", reportHandler.Analysis).Methods("GET")
	requesterRoutes.HandleFunc("/view", reportHandler.View).Methods("GET")
	requesterRoutes.HandleFunc("/export.xlsx", reportHandler.Export).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	if c.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(c.Gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}

	// Preflight for routes whose non-OPTIONS method sits behind auth
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
