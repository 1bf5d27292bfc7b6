package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"medscribe-server/internal/catalog"
	"medscribe-server/internal/config"
	"medscribe-server/internal/handlers"
	"medscribe-server/internal/middleware"
)

// SetupRoutes configures the application routes.
//
// The bearer token is advisory on most endpoints: OptionalAuth resolves it
// into an Identity but never rejects. The few endpoints the API contract
// marks as protected additionally use RequireAuth.
func SetupRoutes(router *gin.Engine, cat *catalog.Catalog, cfg *config.Config, logger zerolog.Logger) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	doctorHandler := handlers.NewDoctorHandler()
	patientHandler := handlers.NewPatientHandler()
	prescriptionHandler := handlers.NewPrescriptionHandler()
	medicineHandler := handlers.NewMedicineHandler(cat)
	healthTipHandler := handlers.NewHealthTipHandler()
	notificationHandler := handlers.NewNotificationHandler()
	followUpHandler := handlers.NewFollowUpHandler()

	optional := middleware.OptionalAuth(cfg, logger)
	required := middleware.RequireAuth(cfg)

	// Public routes (no token needed)
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register/doctor", authHandler.RegisterDoctor)
		auth.POST("/register/patient", authHandler.RegisterPatient)
	}

	doctors := router.Group("/doctors", optional)
	{
		doctors.GET("", doctorHandler.List)
		doctors.GET("/:id", doctorHandler.Get)
		doctors.PUT("/:id", required, doctorHandler.Update)
		doctors.DELETE("/:id", required, doctorHandler.Delete)
		doctors.GET("/:id/patients", required, doctorHandler.Patients)
	}

	patients := router.Group("/patients", optional)
	{
		patients.GET("", patientHandler.List)
		patients.GET("/:id", patientHandler.Get)
		patients.PUT("/:id", required, patientHandler.Update)
		patients.DELETE("/:id", required, patientHandler.Delete)
	}

	prescriptions := router.Group("/prescriptions", optional)
	{
		prescriptions.GET("", prescriptionHandler.List)
		prescriptions.POST("", prescriptionHandler.Create)
		prescriptions.GET("/:id", prescriptionHandler.Get)
		prescriptions.PUT("/:id", prescriptionHandler.Update)
		prescriptions.GET("/doctor/:doctorId", prescriptionHandler.ByDoctor)
		prescriptions.GET("/patient/:patientId", prescriptionHandler.ByPatient)
	}

	medicines := router.Group("/medicines", optional)
	{
		medicines.GET("", medicineHandler.List)
		medicines.GET("/search", medicineHandler.Search)
		medicines.GET("/groups", medicineHandler.Groups)
		medicines.GET("/companies", medicineHandler.Companies)
		medicines.GET("/by-group/:group", medicineHandler.ByGroup)
		medicines.GET("/by-company/:company", medicineHandler.ByCompany)
	}

	healthTips := router.Group("/health-tips", optional)
	{
		healthTips.GET("", healthTipHandler.List)
		healthTips.POST("", healthTipHandler.Create)
		healthTips.GET("/:id", healthTipHandler.Get)
		healthTips.GET("/patient/:patientId", healthTipHandler.ForPatient)
	}

	notifications := router.Group("/notifications", optional)
	{
		notifications.GET("/patient/:patientId", notificationHandler.ForPatient)
		notifications.PUT("/:id/update", notificationHandler.Update)
		notifications.GET("/schedule/patient/:patientId", notificationHandler.Schedule)
	}

	followups := router.Group("/followups", optional)
	{
		followups.GET("", followUpHandler.List)
		followups.GET("/doctor/:doctorId", followUpHandler.ByDoctor)
		followups.GET("/doctor/:doctorId/due", followUpHandler.Due)
		followups.GET("/patient/:patientId", followUpHandler.ByPatient)
		followups.PUT("/:id/update", followUpHandler.Update)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
