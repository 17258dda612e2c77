package routes

import (
	"context"
	"net/http"

	"hotelhub/config"
	"hotelhub/controllers"
	middlewares "hotelhub/middleware"
	"hotelhub/services"
	"hotelhub/services/logger"
	"hotelhub/services/notification"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes đăng ký toàn bộ route của API.
// Role: 1 super admin, 2 quản lý, 3 lễ tân/thu ngân, 0 khách.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	notifs := notification.NewService(db, m)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:            db,
		Logger:        appLogger,
		Notifications: notifs,
	})
	invoiceService := services.NewInvoiceService(services.InvoiceServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	paymentService := services.NewPaymentService(services.PaymentServiceOptions{
		DB:       db,
		Logger:   appLogger,
		Bookings: bookingService,
	})

	bookingController := controllers.NewBookingController(db, redisCli, bookingService)
	invoiceController := controllers.NewInvoiceController(db, redisCli, invoiceService)
	rentalController := controllers.NewRentalController(db, bookingService, invoiceService)
	roomController := controllers.NewRoomController(db, redisCli, bookingService)
	customerController := controllers.NewCustomerController(db)
	serviceController := controllers.NewServiceController(db)
	staffController := controllers.NewStaffController(db)
	maintenanceController := controllers.NewMaintenanceController(db, notifs)
	notificationController := controllers.NewNotificationController(db)
	settingsController := controllers.NewSettingsController(db)
	paymentController := controllers.NewPaymentController(db, paymentService)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetMe)

	v1.GET("/bookings", middlewares.AuthMiddleware(1, 2, 3), bookingController.GetBookings)
	v1.GET("/bookings/my", middlewares.AuthMiddleware(), bookingController.GetMyBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.POST("/bookings/walk-in", middlewares.AuthMiddleware(1, 2, 3), bookingController.CreateWalkIn)
	v1.PUT("/bookings/:id", middlewares.AuthMiddleware(1, 2, 3), bookingController.UpdateBooking)
	v1.PUT("/bookings/:id/cancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(1), bookingController.DeleteBooking)

	v1.GET("/invoices", middlewares.AuthMiddleware(1, 2, 3), invoiceController.GetInvoices)
	v1.GET("/invoices/preview", middlewares.AuthMiddleware(1, 2, 3), invoiceController.PreviewInvoice)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(1, 2, 3), invoiceController.GetInvoiceDetail)
	v1.POST("/invoices", middlewares.AuthMiddleware(1, 2, 3), invoiceController.CreateInvoice)
	v1.PUT("/invoices/:id", middlewares.AuthMiddleware(1), invoiceController.UpdateInvoice)
	v1.DELETE("/invoices/:id", middlewares.AuthMiddleware(1), invoiceController.DeleteInvoice)

	v1.GET("/paymentMethods", middlewares.AuthMiddleware(1, 2, 3), invoiceController.GetPaymentMethods)
	v1.POST("/paymentMethods", middlewares.AuthMiddleware(1, 2), invoiceController.CreatePaymentMethod)
	v1.PUT("/paymentMethods/:id", middlewares.AuthMiddleware(1, 2), invoiceController.UpdatePaymentMethod)

	v1.GET("/rentals", middlewares.AuthMiddleware(1, 2, 3), rentalController.GetRentals)
	v1.GET("/rentals/:id", middlewares.AuthMiddleware(1, 2, 3), rentalController.GetRentalDetail)
	v1.POST("/rentals/check-in", middlewares.AuthMiddleware(1, 2, 3), rentalController.CheckIn)
	v1.POST("/rentals/check-out", middlewares.AuthMiddleware(1, 2, 3), rentalController.CheckOut)

	v1.GET("/roomTypes", roomController.GetRoomTypes)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(1, 2), roomController.CreateRoomType)
	v1.PUT("/roomTypes/:id", middlewares.AuthMiddleware(1, 2), roomController.UpdateRoomType)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/availability", roomController.CheckAvailability)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(1, 2), roomController.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(1, 2), roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(1), roomController.DeleteRoom)

	v1.GET("/customers", middlewares.AuthMiddleware(1, 2, 3), customerController.GetCustomers)
	v1.GET("/customers/:id", middlewares.AuthMiddleware(1, 2, 3), customerController.GetCustomerDetail)
	v1.POST("/customers", middlewares.AuthMiddleware(1, 2, 3), customerController.CreateCustomer)
	v1.PUT("/customers/:id", middlewares.AuthMiddleware(1, 2, 3), customerController.UpdateCustomer)
	v1.DELETE("/customers/:id", middlewares.AuthMiddleware(1), customerController.DeleteCustomer)

	v1.GET("/services", serviceController.GetServices)
	v1.POST("/services", middlewares.AuthMiddleware(1, 2), serviceController.CreateService)
	v1.PUT("/services/:id", middlewares.AuthMiddleware(1, 2), serviceController.UpdateService)
	v1.GET("/rentals/:id/usages", middlewares.AuthMiddleware(1, 2, 3), serviceController.GetUsages)
	v1.POST("/serviceUsages", middlewares.AuthMiddleware(1, 2, 3), serviceController.CreateUsage)
	v1.PUT("/serviceUsages/:id", middlewares.AuthMiddleware(1, 2, 3), serviceController.UpdateUsageStatus)

	v1.GET("/staff", middlewares.AuthMiddleware(1, 2), staffController.GetStaff)
	v1.POST("/staff", middlewares.AuthMiddleware(1, 2), staffController.CreateStaff)
	v1.PUT("/staff/:id", middlewares.AuthMiddleware(1, 2), staffController.UpdateStaff)
	v1.GET("/positions", middlewares.AuthMiddleware(1, 2), staffController.GetPositions)

	v1.GET("/maintenances", middlewares.AuthMiddleware(1, 2, 3), maintenanceController.GetMaintenances)
	v1.POST("/maintenances", middlewares.AuthMiddleware(1, 2, 3), maintenanceController.CreateMaintenance)
	v1.PUT("/maintenances/:id/complete", middlewares.AuthMiddleware(1, 2, 3), maintenanceController.CompleteMaintenance)

	v1.GET("/notifications", middlewares.AuthMiddleware(), notificationController.GetNotifications)
	v1.PUT("/notifications/:id/read", middlewares.AuthMiddleware(), notificationController.MarkNotificationRead)
	v1.PUT("/notifications/read-all", middlewares.AuthMiddleware(), notificationController.MarkAllNotificationsRead)

	v1.GET("/settings", middlewares.AuthMiddleware(1, 2, 3), settingsController.GetSettings)
	v1.PUT("/settings", middlewares.AuthMiddleware(1), settingsController.UpdateSettings)

	v1.POST("/payments/sessions", middlewares.AuthMiddleware(), paymentController.CreatePaymentSession)
	v1.GET("/payments/sessions/:ref", middlewares.AuthMiddleware(), paymentController.GetPaymentSession)
	v1.POST("/payments/webhook", paymentController.PaymentWebhook)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không mở được file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})

	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
