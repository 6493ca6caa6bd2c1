package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/banterhq/banter/internal/config"
	httpHandler "github.com/banterhq/banter/internal/delivery/http"
	"github.com/banterhq/banter/internal/delivery/ws"
	"github.com/banterhq/banter/internal/middleware"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	// Reload config after loading .env
	config.AppConfig = config.LoadFromEnv()

	if config.AppConfig.LogLevel == "silent" || config.AppConfig.LogLevel == "off" {
		log.SetOutput(io.Discard)
	}

	// The hub owns all presence state for the process lifetime
	hub := ws.NewHub()
	go hub.Run()

	handler := httpHandler.NewHandler(hub)

	mux := http.NewServeMux()

	// Serve static files
	fs := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	// Chat page
	mux.HandleFunc("/", handler.HandleIndex)

	// WebSocket route with rate limiting
	mux.HandleFunc("/ws", middleware.RateLimitFunc(middleware.WebSocketLimiter, handler.HandleWebSocket))

	// API routes with rate limiting
	mux.HandleFunc("/api/participants", middleware.RateLimitFunc(middleware.APILimiter, handler.HandleParticipants))

	// Apply security headers middleware to all requests
	securedHandler := middleware.SecurityHeaders(mux)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.Port,
		Handler:      securedHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("banter running at http://localhost:%s", config.AppConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	hub.Shutdown()

	log.Println("Server exited gracefully")
}
