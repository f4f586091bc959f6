package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymadmin/gym-app/internal/api"
	"gymadmin/gym-app/internal/config"
	"gymadmin/gym-app/internal/repository/kv"
	"gymadmin/gym-app/internal/service"
	"gymadmin/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Gym Admin Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Collection Store ---
	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize collection store: %v", err)
	}
	log.Printf("Collection store ready at %s", cfg.Storage.DataDir)

	// --- Media Storage (optional) ---
	var mediaStorage storage.MediaStorage
	if cfg.S3.BucketName != "" {
		mediaStorage, err = storage.NewS3MediaStorage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize media storage: %v", err)
		}
	} else {
		log.Println("No media bucket configured; media upload URLs disabled.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	adminRepo := kv.NewAdminRepository(store)
	userRepo := kv.NewUserRepository(store)
	machineTypeRepo := kv.NewMachineTypeRepository(store)
	machineRepo := kv.NewMachineRepository(store)
	exerciseRepo := kv.NewExerciseRepository(store)
	routineRepo := kv.NewRoutineRepository(store)
	maintenanceRepo := kv.NewMaintenanceRepository(store)
	paymentRepo := kv.NewPaymentRepository(store)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(adminRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	memberService := service.NewMemberService(userRepo)
	equipmentService := service.NewEquipmentService(machineTypeRepo, machineRepo, maintenanceRepo)
	trainingService := service.NewTrainingService(exerciseRepo, routineRepo, userRepo, machineRepo, machineTypeRepo, mediaStorage)
	paymentService := service.NewPaymentService(paymentRepo, userRepo)
	summaryService := service.NewSummaryService(userRepo, paymentRepo, machineRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, memberService, equipmentService, trainingService, paymentService, summaryService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give in-flight requests five seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
