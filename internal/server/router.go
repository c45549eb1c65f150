package server

import (
	"log"
	"net/http"
	"time"

	"github.com/Khattouaymen/pressing-sub000/internal/handlers"
	"github.com/Khattouaymen/pressing-sub000/internal/httpx"
	"github.com/Khattouaymen/pressing-sub000/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – ignore detailed errors in body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ch := handlers.NewClientHandler(db)
	mux.HandleFunc("GET /api/clients", ch.List)
	mux.HandleFunc("POST /api/clients", ch.Create)
	mux.HandleFunc("PUT /api/clients/{id}", ch.Update)
	mux.HandleFunc("DELETE /api/clients/{id}", ch.Delete)

	ph := handlers.NewPieceHandler(db)
	mux.HandleFunc("GET /api/pieces", ph.List)
	mux.HandleFunc("POST /api/pieces", ph.Create)
	mux.HandleFunc("PUT /api/pieces/{id}", ph.Update)
	mux.HandleFunc("DELETE /api/pieces/{id}", ph.Delete)

	oh := handlers.NewOrderHandler(db, services.NewOrderService(db))
	mux.HandleFunc("GET /api/orders", oh.List)
	mux.HandleFunc("POST /api/orders", oh.Create)
	mux.HandleFunc("PUT /api/orders/{id}", oh.Update)
	mux.HandleFunc("DELETE /api/orders/{id}", oh.Delete)

	pch := handlers.NewProfessionalClientHandler(db)
	mux.HandleFunc("GET /api/professional-clients", pch.List)
	mux.HandleFunc("POST /api/professional-clients", pch.Create)
	mux.HandleFunc("PUT /api/professional-clients/{id}", pch.Update)
	mux.HandleFunc("DELETE /api/professional-clients/{id}", pch.Delete)

	poh := handlers.NewProfessionalOrderHandler(db)
	mux.HandleFunc("GET /api/professional-orders", poh.List)
	mux.HandleFunc("POST /api/professional-orders", poh.Create)
	mux.HandleFunc("PUT /api/professional-orders/{id}", poh.Update)
	mux.HandleFunc("DELETE /api/professional-orders/{id}", poh.Delete)

	return withRecover(withRequestID(withLogging(mux)))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRequestID tags each request/response pair for log correlation.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic: %v (%s %s)", rec, r.Method, r.URL.Path)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
