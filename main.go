package main

import (
	"log"
	"os"

	"hotelhub/config"
	"hotelhub/jobs"
	"hotelhub/models"
	"hotelhub/routes"
	"hotelhub/services"
	"hotelhub/services/logger"
	"hotelhub/services/notification"

	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Position{},
		&models.Customer{},
		&models.User{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.RentalReceipt{},
		&models.HotelService{},
		&models.ServiceUsage{},
		&models.PaymentMethod{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Maintenance{},
		&models.Notification{},
		&models.Setting{},
		&models.PaymentSession{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:            config.DB,
		Logger:        logger.NewDefaultLogger(logger.InfoLevel),
		Notifications: notification.NewService(config.DB, m),
	})
	jobs.SetNoShowSweeper(bookingService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
