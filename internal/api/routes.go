package api

import (
	"net/http"

	"gymadmin/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	memberService service.MemberService,
	equipmentService service.EquipmentService,
	trainingService service.TrainingService,
	paymentService service.PaymentService,
	summaryService service.SummaryService,
) {
	authHandler := NewAuthHandler(authService)
	memberHandler := NewMemberHandler(memberService)
	equipmentHandler := NewEquipmentHandler(equipmentService)
	trainingHandler := NewTrainingHandler(trainingService)
	paymentHandler := NewPaymentHandler(paymentService)
	summaryHandler := NewSummaryHandler(summaryService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			adminID, err := getAdminIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get admin ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"adminId": adminID})
		})

		protected.GET("/admins", authHandler.ListAdmins)

		userGroup := protected.Group("/users")
		{
			userGroup.POST("", memberHandler.CreateUser)
			userGroup.GET("", memberHandler.ListUsers)
			userGroup.GET("/:id", memberHandler.GetUser)
			userGroup.PATCH("/:id", memberHandler.UpdateUser)
			userGroup.DELETE("/:id", memberHandler.DeleteUser)
		}

		typeGroup := protected.Group("/machine-types")
		{
			typeGroup.POST("", equipmentHandler.CreateMachineType)
			typeGroup.GET("", equipmentHandler.ListMachineTypes)
			typeGroup.GET("/:id", equipmentHandler.GetMachineType)
			typeGroup.PATCH("/:id", equipmentHandler.UpdateMachineType)
			typeGroup.DELETE("/:id", equipmentHandler.DeleteMachineType)
		}

		machineGroup := protected.Group("/machines")
		{
			machineGroup.POST("", equipmentHandler.CreateMachine)
			machineGroup.GET("", equipmentHandler.ListMachines)
			machineGroup.GET("/:id", equipmentHandler.GetMachine)
			machineGroup.PATCH("/:id", equipmentHandler.UpdateMachine)
			machineGroup.DELETE("/:id", equipmentHandler.DeleteMachine)
		}

		maintenanceGroup := protected.Group("/maintenances")
		{
			maintenanceGroup.POST("", equipmentHandler.CreateMaintenance)
			maintenanceGroup.GET("", equipmentHandler.ListMaintenances)
			maintenanceGroup.GET("/:id", equipmentHandler.GetMaintenance)
			maintenanceGroup.PATCH("/:id", equipmentHandler.UpdateMaintenance)
			maintenanceGroup.DELETE("/:id", equipmentHandler.DeleteMaintenance)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", trainingHandler.CreateExercise)
			exerciseGroup.GET("", trainingHandler.ListExercises)
			exerciseGroup.GET("/:id", trainingHandler.GetExercise)
			exerciseGroup.PATCH("/:id", trainingHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", trainingHandler.DeleteExercise)
		}

		routineGroup := protected.Group("/routines")
		{
			routineGroup.POST("", trainingHandler.CreateRoutine)
			routineGroup.GET("", trainingHandler.ListRoutines)
			routineGroup.GET("/:id", trainingHandler.GetRoutine)
			routineGroup.PATCH("/:id", trainingHandler.UpdateRoutine)
			routineGroup.DELETE("/:id", trainingHandler.DeleteRoutine)
		}

		paymentGroup := protected.Group("/payments")
		{
			paymentGroup.POST("", paymentHandler.RecordPayment)
			paymentGroup.GET("", paymentHandler.ListPayments)
			paymentGroup.GET("/:id", paymentHandler.GetPayment)
			paymentGroup.PATCH("/:id", paymentHandler.UpdatePayment)
			paymentGroup.DELETE("/:id", paymentHandler.DeletePayment)
		}

		protected.GET("/summary", summaryHandler.GetSummary)
		protected.POST("/media/upload-url", trainingHandler.GenerateMediaUploadURL)
	}
}
