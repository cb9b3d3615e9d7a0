package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/controllers"
	"github.com/kerem/notesphere/internal/middleware"
)

// SetupRouter configures all application routes. Paths have no version
// prefix; the browsing frontend hardcodes them.
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	noteController *controllers.NoteController,
	reviewController *controllers.ReviewController,
	uploadController *controllers.UploadController,
	developerController *controllers.DeveloperController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Reachability probe
	router.GET("/test", healthController.Test)

	// --- Public catalog routes ---
	router.GET("/departments", catalogController.GetDepartments)
	router.GET("/courses", catalogController.GetCourses)
	router.GET("/tags", catalogController.GetTags)

	// --- Public note browsing ---
	notes := router.Group("/notes")
	{
		notes.GET("", noteController.GetNotes)
		notes.GET("/:id", noteController.GetNoteByID)
		notes.PUT("/:id/description", noteController.UpdateDescription)
		notes.GET("/:id/reviews", reviewController.GetReviews)
		notes.POST("/:id/reviews", reviewController.CreateReview)
	}
	router.PUT("/reviews/:id", reviewController.UpdateReview)

	// --- Upload ---
	router.POST("/upload", uploadController.UploadNote)

	// --- Developer auth ---
	router.POST("/auth/developer-login", authController.DeveloperLogin)

	// --- Developer dashboard routes ---
	// The guard is a pass-through unless developer auth is enabled in config.
	developer := router.Group("")
	developer.Use(authMiddleware.DeveloperRequired())
	{
		developer.POST("/courses", catalogController.CreateCourse)
		developer.POST("/tags", catalogController.CreateTag)

		developer.DELETE("/notes/:id", noteController.DeleteNote)
		developer.POST("/restore-note/:id", noteController.RestoreNote)
		developer.DELETE("/reviews/:id", reviewController.DeleteReview)
		developer.POST("/restore-review/:id", reviewController.RestoreReview)

		developer.GET("/stats", developerController.GetStats)
		developer.GET("/deleted-notes", developerController.GetDeletedNotes)
		developer.GET("/deleted-reviews", developerController.GetDeletedReviews)
	}
}
