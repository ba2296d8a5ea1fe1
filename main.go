package main

import (
	"log"
	"net/http"
	"os"

	"newsroom/config"
	"newsroom/handlers"
	"newsroom/mailer"
	"newsroom/middleware"
	"newsroom/repositories"
	"newsroom/services"
	"newsroom/social"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	publisherRepo := repositories.NewPublisherRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)

	// External collaborators. The social client authenticates once here
	// and is reused for every post.
	smtpMailer := mailer.NewSMTP(config.SMTP())
	socialClient := social.New(config.Social())

	// Initialize services
	notificationService := services.NewNotificationService(subscriptionRepo, smtpMailer, socialClient)
	authService := services.NewAuthService(userRepo, publisherRepo)
	contentService := services.NewContentService(articleRepo, newsletterRepo, publisherRepo, notificationService)
	subscriptionService := services.NewSubscriptionService(userRepo, publisherRepo, subscriptionRepo, articleRepo, newsletterRepo)
	publisherService := services.NewPublisherService(publisherRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(contentService)
	newsletterHandler := handlers.NewNewsletterHandler(contentService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	feedHandler := handlers.NewFeedHandler(subscriptionService, contentService)
	publisherHandler := handlers.NewPublisherHandler(publisherService)

	// Setup router
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile and role management
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/users/:id/role", authHandler.ReassignRole)
			protected.DELETE("/users/:id", authHandler.DeleteUser)

			// Role-dependent dashboard
			protected.GET("/dashboard", feedHandler.Dashboard)

			// Publishers and journalists (subscription pickers, staff)
			publishers := protected.Group("/publishers")
			{
				publishers.GET("", publisherHandler.GetPublishers)
				publishers.DELETE("/:id", publisherHandler.DeletePublisher)
				publishers.POST("/:id/staff", publisherHandler.AddStaff)
				publishers.DELETE("/:id/staff", publisherHandler.RemoveStaff)
			}
			protected.GET("/journalists", publisherHandler.GetJournalists)

			// Subscriptions (reader-only, full replace)
			subscriptions := protected.Group("/subscriptions")
			{
				subscriptions.GET("", subscriptionHandler.GetSubscriptions)
				subscriptions.PUT("", subscriptionHandler.SetSubscriptions)
			}

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/approve", articleHandler.ApproveArticle)
			}

			// Newsletters
			newsletters := protected.Group("/newsletters")
			{
				newsletters.POST("", newsletterHandler.CreateNewsletter)
				newsletters.GET("/:id", newsletterHandler.GetNewsletter)
				newsletters.PUT("/:id", newsletterHandler.UpdateNewsletter)
				newsletters.DELETE("/:id", newsletterHandler.DeleteNewsletter)
				newsletters.POST("/:id/approve", newsletterHandler.ApproveNewsletter)
			}

			// Read-only feed API
			protected.GET("/feed/articles", feedHandler.SubscribedArticles)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
