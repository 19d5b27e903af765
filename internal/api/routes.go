package api

import (
	"net/http"

	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	templateService service.TemplateService,
	contentService service.ContentService,
	galleryService service.GalleryService,
) {

	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(catalogService)
	templateHandler := NewTemplateHandler(templateService)
	contentHandler := NewContentHandler(contentService)
	galleryHandler := NewGalleryHandler(galleryService)

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

		// Public blog reads for the marketing site.
		apiV1.GET("/blog", contentHandler.ListPosts(true))
		apiV1.GET("/blog/:slug", contentHandler.GetPostBySlug)

		// Public support ticket intake from the mobile app and site.
		apiV1.POST("/tickets", contentHandler.SubmitTicket)

		// Static reference vocabularies for dashboard dropdowns.
		apiV1.GET("/exercise-catalog/bodyparts", catalogHandler.GetBodyParts)
		apiV1.GET("/exercise-catalog/equipments", catalogHandler.GetEquipments)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- External Exercise Catalog Routes ---
		catalogGroup := protected.Group("/exercise-catalog")
		{
			// POST /api/v1/exercise-catalog/query - single proxy endpoint the
			// dashboard browser talks to; API keys never leave the server.
			catalogGroup.POST("/query", catalogHandler.QueryProviders)

			// POST /api/v1/exercise-catalog/search - same query shapes,
			// normalized records with resolved media URLs
			catalogGroup.POST("/search", catalogHandler.SearchExercises)

			// POST /api/v1/exercise-catalog/import - pull one provider exercise
			// into the saved catalog
			catalogGroup.POST("/import", RoleMiddleware(domain.RoleAdmin), catalogHandler.ImportExercise)
		}

		// --- Saved Catalog Routes ---
		savedGroup := protected.Group("/catalog")
		{
			savedGroup.GET("", catalogHandler.ListSavedExercises)
			savedGroup.GET("/:id", catalogHandler.GetSavedExercise)
			savedGroup.PUT("/:id", RoleMiddleware(domain.RoleAdmin), catalogHandler.UpdateSavedExercise)
			savedGroup.DELETE("/:id", RoleMiddleware(domain.RoleAdmin), catalogHandler.DeleteSavedExercise)
		}

		// --- Workout Template Routes ---
		templateGroup := protected.Group("/templates")
		{
			templateGroup.POST("", templateHandler.CreateTemplate)
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.GET("/:id", templateHandler.GetTemplate)
			templateGroup.PUT("/:id", templateHandler.UpdateTemplate)
			templateGroup.DELETE("/:id", RoleMiddleware(domain.RoleAdmin), templateHandler.DeleteTemplate)
		}

		// --- Blog Management Routes (dashboard) ---
		blogGroup := protected.Group("/dashboard/blog")
		{
			blogGroup.POST("", contentHandler.CreatePost)
			blogGroup.GET("", contentHandler.ListPosts(false))
			blogGroup.PUT("/:id", contentHandler.UpdatePost)
			blogGroup.DELETE("/:id", RoleMiddleware(domain.RoleAdmin), contentHandler.DeletePost)
		}

		// --- Support Ticket Management Routes (dashboard) ---
		ticketGroup := protected.Group("/dashboard/tickets")
		{
			ticketGroup.GET("", contentHandler.ListTickets)
			ticketGroup.PATCH("/:id", contentHandler.UpdateTicket)
		}

		// --- Gallery Routes (dashboard media) ---
		galleryGroup := protected.Group("/gallery")
		{
			galleryGroup.POST("/uploads", galleryHandler.RequestUpload)
			galleryGroup.GET("", galleryHandler.ListItems)
			galleryGroup.GET("/:id/download", galleryHandler.GetDownloadURL)
			galleryGroup.DELETE("/:id", RoleMiddleware(domain.RoleAdmin), galleryHandler.DeleteItem)
		}
	}
}
