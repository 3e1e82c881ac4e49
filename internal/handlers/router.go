package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/services"
	"github.com/CampusPrep-2025/placement-service/internal/utils"
	"github.com/CampusPrep-2025/placement-service/internal/validator"
)

type HandlerManager struct {
	session services.SessionService

	authHandler    *AuthHandler
	driveHandler   *DriveHandler
	studentHandler *StudentHandler
	prepHandler    *PrepHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		session:        serviceManager.Session(),
		authHandler:    NewAuthHandler(serviceManager.Session(), validator, logger),
		driveHandler:   NewDriveHandler(serviceManager.Drive(), serviceManager.Export(), validator, logger),
		studentHandler: NewStudentHandler(serviceManager.Account(), serviceManager.Export(), validator, logger),
		prepHandler:    NewPrepHandler(serviceManager.Prep(), validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "placement-service",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(SessionMiddleware(hm.session))
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", hm.authHandler.SignUp)
			auth.POST("/signin", hm.authHandler.SignIn)
			auth.POST("/admin", hm.authHandler.SignInAsAdmin)
			auth.POST("/signout", hm.authHandler.SignOut)
			auth.GET("/session", hm.authHandler.CurrentSession)
		}

		// Drive catalog routes
		drives := v1.Group("/drives")
		{
			drives.GET("", hm.driveHandler.ListDrives)

			admin := drives.Group("")
			admin.Use(RequireRole(models.RoleAdmin))
			{
				admin.POST("", hm.driveHandler.AddDrive)
				admin.DELETE("/:id", hm.driveHandler.RemoveDrive)
				admin.GET("/export", hm.driveHandler.ExportDrives)
			}
		}

		// Student document routes
		students := v1.Group("/students")
		students.Use(RequireAuth())
		{
			students.GET("/me", hm.studentHandler.GetDocument)
			students.PUT("/me", hm.studentHandler.UpdateDocument)
			students.PUT("/me/roadmaps", hm.studentHandler.UpdateRoadmaps)
			students.POST("/me/tests", hm.studentHandler.RecordTest)

			students.GET("/:uid/tests/export", RequireRole(models.RoleAdmin), hm.studentHandler.ExportTests)
		}

		// Preparation (AI generation) routes
		prep := v1.Group("/prep")
		prep.Use(RequireAuth())
		{
			prep.POST("/roadmaps", hm.prepHandler.GenerateRoadmap)
			prep.POST("/tests", hm.prepHandler.GenerateMockTest)
			prep.POST("/interview", hm.prepHandler.GenerateInterviewQuestions)
			prep.POST("/resume", hm.prepHandler.AnalyzeResume)
		}
	}
}
