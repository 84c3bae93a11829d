package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncc-portal/backend/internal/app/controllers"
	"github.com/ncc-portal/backend/internal/app/models/dto"
	"github.com/ncc-portal/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	enrollmentController *controllers.EnrollmentController,
	contentController *controllers.ContentController,
	authMiddleware *middleware.AuthMiddleware,
	dbPool *pgxpool.Pool,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/reset-demo", authController.ResetDemo)
	}

	// --- Public content routes ---
	v1.GET("/events", contentController.Events)
	v1.GET("/gallery", contentController.Gallery)
	v1.GET("/news", contentController.News)
	v1.GET("/faqs", contentController.FAQs)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.POST("", enrollmentController.Create)
			enrollments.GET("/my", enrollmentController.ListMine)
		}

		// Admin-only review surface
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/enrollments", enrollmentController.ListAll)
			admin.PATCH("/enrollments/:id", enrollmentController.UpdateStatus)
		}
	}

	// Health check endpoint (public); reports degraded when the database is
	// unreachable.
	v1.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("Database unavailable"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
