package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"sportbuddy_server/config"
	"sportbuddy_server/routes"
	"sportbuddy_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Initialize the record store and services
	log.Printf("Using data directory: %s", cfg.DataDir)
	store := services.NewRecordStore(cfg.DataDir)

	sessionService := services.NewSessionService(cfg.JWTSecret)
	userService := &services.UserService{Store: store}
	activityService := &services.ActivityService{Store: store}
	notifyService := &services.NotifyService{AppURL: cfg.AppURL}
	matchService := &services.MatchService{Store: store, Users: userService, Notify: notifyService}
	searchService := &services.SearchService{Store: store}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SportBuddy")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, userService, sessionService)
	routes.RegisterUserRoutes(r, userService, sessionService)
	routes.RegisterActivityRoutes(r, activityService, sessionService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterSearchRoutes(r, searchService)

	// Avatar uploads only work with a configured bucket
	if cfg.S3Bucket != "" {
		mediaService, err := services.NewMediaService(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			log.Fatalf("Failed to initialize media service: %v", err)
		}
		routes.RegisterMediaRoutes(r, mediaService, sessionService)
		log.Printf("Avatar uploads enabled on bucket %s", cfg.S3Bucket)
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
