package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Khattouaymen/pressing-sub000/internal/config"
	"github.com/Khattouaymen/pressing-sub000/internal/db"
	"github.com/Khattouaymen/pressing-sub000/internal/server"
	"github.com/Khattouaymen/pressing-sub000/internal/services"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	recalcOnlyFlag  = flag.Bool("recalc-stats", false, "Recalculate client statistics and exit")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()

	dbConn, err := db.ConnectAndMigrate(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Erreur connexion DB: %v", err)
	}
	defer func() {
		if cerr := db.Close(dbConn); cerr != nil {
			log.Printf("db close: %v", cerr)
		}
	}()

	if *migrateOnlyFlag {
		log.Println("migrations completed; exiting as requested")
		return
	}

	// Répare la dérive des compteurs laissée par un arrêt brutal entre
	// l'insertion d'une commande et la mise à jour des statistiques.
	stats := services.NewStatsService(dbConn)
	if err := stats.Recalculate(); err != nil {
		log.Fatalf("stats recalculation failed: %v", err)
	}
	if *recalcOnlyFlag {
		log.Println("stats recalculated; exiting as requested")
		return
	}

	log.Printf("Starting server env=%s port=%s", cfg.Env, cfg.Port)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: c.Handler(server.New(dbConn))}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
