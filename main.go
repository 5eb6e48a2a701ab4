package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"joinus_server/middleware"
	"joinus_server/routes"
	"joinus_server/services"
	"joinus_server/socket"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/gorilla/mux"
)

func configureLogging() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using environment variables")
	}
	configureLogging()

	// Initialize DynamoDB client and service
	log.Info("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}

	s3Service := &services.S3Service{
		Client: services.InitializeS3Client(),
		Bucket: os.Getenv("S3_BUCKET_NAME"),
	}

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	eventService := &services.EventService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService, Events: eventService}
	discoveryService := &services.DiscoveryService{Events: eventService, Chats: chatService}
	announcementService := &services.AnnouncementService{Dynamo: dynamoService, Events: eventService}
	ratingService := &services.RatingService{Dynamo: dynamoService, Events: eventService, Chats: chatService}
	leaderboardService := &services.LeaderboardService{Dynamo: dynamoService, Events: eventService, Profiles: userProfileService}

	// Real-time channel
	socketServer := socket.NewSocketServer(chatService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server failed: %v", err)
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Join Us")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterDiscoveryRoutes(r, discoveryService)
	routes.RegisterEventRoutes(r, eventService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterLeaderboardRoutes(r, leaderboardService)
	routes.RegisterAnnouncementRoutes(r, announcementService, socketServer)
	routes.RegisterRatingRoutes(r, ratingService)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterS3Routes(r, s3Service)

	// HTTP metrics
	metrics := middleware.NewMetrics()

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(metrics.Instrument(r))

	// Start the HTTP server
	log.Infof("Starting server on port %s...", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
