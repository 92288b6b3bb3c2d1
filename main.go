package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"skillswap_server/middleware"
	"skillswap_server/routes"
	"skillswap_server/services"
	"skillswap_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables from .env when present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize repositories
	userRepo := &services.UserRepository{Dynamo: dynamoService}
	messageRepo := &services.MessageRepository{Dynamo: dynamoService}
	meetingRepo := &services.MeetingRepository{Dynamo: dynamoService}

	// Initialize Socket.IO server and notifier
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("❌ Socket.IO server error: %v", err)
		}
	}()
	defer socketServer.Close()
	notifier := &socket.Notifier{Server: socketServer}

	// Initialize Services
	matchPolicy := services.ParseMatchPolicy(os.Getenv("MATCH_POLICY"))
	log.Printf("Match policy: %s\n", matchPolicy)

	matchService := &services.MatchService{Users: userRepo}
	swipeService := &services.SwipeService{
		Users:    userRepo,
		Matches:  matchService,
		Notifier: notifier,
		Policy:   matchPolicy,
		Now:      time.Now,
	}
	chatService := &services.ChatService{
		Users:    userRepo,
		Messages: messageRepo,
		Notifier: notifier,
		Now:      time.Now,
	}
	meetingService := &services.MeetingService{
		Users:    userRepo,
		Meetings: meetingRepo,
		Notifier: notifier,
		Now:      time.Now,
	}
	notificationService := &services.NotificationService{
		Messages: messageRepo,
		Meetings: meetingRepo,
	}
	authService := &services.AuthService{
		Users:  userRepo,
		Secret: []byte(jwtSecret),
		Now:    time.Now,
	}
	userService := &services.UserService{Users: userRepo}
	mediaService := &services.MediaService{Client: services.InitializeS3Client()}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SkillSwap")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Mount the Socket.IO endpoint
	r.PathPrefix("/socket.io/").Handler(socketServer)

	// Register routes
	auth := middleware.Auth([]byte(jwtSecret))
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterUserRoutes(r, userService, auth)
	routes.RegisterSwipeRoutes(r, swipeService, matchService, auth)
	routes.RegisterChatRoutes(r, chatService, auth)
	routes.RegisterMeetingRoutes(r, meetingService, auth)
	routes.RegisterNotificationRoutes(r, notificationService, chatService, auth)
	routes.RegisterS3Routes(r, mediaService, auth)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
