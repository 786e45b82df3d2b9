package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/greencityconnect/waste-backend/api/routes"
	"github.com/greencityconnect/waste-backend/internal/config"
	"github.com/greencityconnect/waste-backend/internal/handlers"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	mongorepo "github.com/greencityconnect/waste-backend/internal/repositories/mongodb"
	"github.com/greencityconnect/waste-backend/internal/services"
	"github.com/greencityconnect/waste-backend/pkg/mongodb"
	"github.com/greencityconnect/waste-backend/pkg/qrgateway"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var adminRepo repositories.AdminRepository = mongorepo.NewAdminRepository(db)
	var wasteLogRepo repositories.WasteLogRepository = mongorepo.NewWasteLogRepository(db)
	var pickupRepo repositories.PickupRepository = mongorepo.NewPickupRepository(db)
	var bookingRepo repositories.BookingRepository = mongorepo.NewBookingRepository(db)
	var paymentRepo repositories.PaymentRepository = mongorepo.NewPaymentRepository(db)
	var planRepo repositories.PlanRepository = mongorepo.NewPlanRepository(db)
	var complaintRepo repositories.ComplaintRepository = mongorepo.NewComplaintRepository(db)
	var messageRepo repositories.AdminMessageRepository = mongorepo.NewAdminMessageRepository(db)
	var announcementRepo repositories.AnnouncementRepository = mongorepo.NewAnnouncementRepository(db)

	// QR gateway
	var qrGateway qrgateway.Gateway
	if cfg.QRGateway.Mock {
		qrGateway = qrgateway.NewMockGateway()
	} else {
		qrGateway = qrgateway.NewHTTPGateway(cfg.QRGateway.BaseURL, cfg.QRGateway.Size)
	}

	// Services
	authService := services.NewAuthService(userRepo, adminRepo, planRepo, cfg)
	userService := services.NewUserService(userRepo)
	wasteLogService := services.NewWasteLogService(wasteLogRepo, pickupRepo, userRepo, cfg)
	bookingService := services.NewBookingService(bookingRepo, cfg)
	paymentService := services.NewPaymentService(paymentRepo, userRepo, bookingRepo, planRepo, qrGateway, cfg)
	subscriptionService := services.NewSubscriptionService(planRepo, userRepo, paymentService)
	complaintService := services.NewComplaintService(complaintRepo)
	messageService := services.NewMessageService(messageRepo, announcementRepo, userRepo)
	statsService := services.NewStatsService(userRepo, bookingRepo, paymentRepo, complaintRepo, planRepo)

	// Handlers
	h := &routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		User:         handlers.NewUserHandler(userService),
		WasteLog:     handlers.NewWasteLogHandler(wasteLogService),
		Booking:      handlers.NewBookingHandler(bookingService, paymentService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		Subscription: handlers.NewSubscriptionHandler(subscriptionService),
		Complaint:    handlers.NewComplaintHandler(complaintService),
		Message:      handlers.NewMessageHandler(messageService),
		Stats:        handlers.NewStatsHandler(statsService),
	}

	router := routes.SetupRouter(cfg, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("server exiting")
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
