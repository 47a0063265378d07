package fares

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/le0holt/Fares/config"
	"github.com/le0holt/Fares/dataset"
)

var (
	server *http.Server
	store  *dataset.Store
)

func StartServer(st *dataset.Store) {
	store = st

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/fare", handleFare)
	mux.HandleFunc("/api/places", handlePlaces)
	mux.HandleFunc("/api/destinations", handleDestinations)
	mux.HandleFunc("/api/routes", handleRoutes)
	mux.HandleFunc("/api/faretypes", handleFareTypes)
	mux.HandleFunc("/api/services", handleServices)
	mux.HandleFunc("/api/refresh", handleRefresh)

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Infof("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Infof("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("server shutdown error: %v", err)
		} else {
			log.Infof("server shut down successfully")
		}
	}
}
