package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/config"
	"github.com/thrivesecure/thrivesecure-backend/internal/handlers"
	"github.com/thrivesecure/thrivesecure-backend/internal/middleware"
	"go.uber.org/zap"
)

// HandlerDependencies collects the handlers the router wires up
type HandlerDependencies struct {
	UserHandler        *handlers.UserHandler
	ApplicationHandler *handlers.ApplicationHandler
	PolicyHandler      *handlers.PolicyHandler
	TransactionHandler *handlers.TransactionHandler
	BlogHandler        *handlers.BlogHandler
	ReviewHandler      *handlers.ReviewHandler
	ClaimHandler       *handlers.ClaimHandler
	NewsletterHandler  *handlers.NewsletterHandler
	PaymentHandler     *handlers.PaymentHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, logger *zap.Logger, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// User routes
	users := router.Group("/users")
	{
		users.POST("", deps.UserHandler.SignIn)
		users.GET("", deps.UserHandler.GetUsers)
		users.GET("/:email", deps.UserHandler.GetUserByEmail)
		users.PATCH("/:id/role", deps.UserHandler.UpdateRole)
		users.DELETE("/:id", deps.UserHandler.DeleteUser)
	}

	// Application routes
	applications := router.Group("/applications")
	{
		applications.POST("", deps.ApplicationHandler.Submit)
		applications.GET("", deps.ApplicationHandler.GetApplications)
		applications.GET("/user/:email", deps.ApplicationHandler.GetApplicationsByApplicant)
		applications.GET("/:id", deps.ApplicationHandler.GetApplication)
		applications.PATCH("/:id/agent-status", deps.ApplicationHandler.UpdateAgentStatus)
		applications.PATCH("/:id/payment-status", deps.ApplicationHandler.UpdatePaymentStatus)
	}

	// Admin application routes
	admin := router.Group("/admin/applications")
	{
		admin.GET("", deps.ApplicationHandler.GetApplications)
		admin.PATCH("/:id/assign", deps.ApplicationHandler.AssignAgent)
		admin.PATCH("/:id/reject", deps.ApplicationHandler.Reject)
	}

	// Policy routes
	policies := router.Group("/policies")
	{
		policies.POST("", deps.PolicyHandler.CreatePolicy)
		policies.GET("", deps.PolicyHandler.GetPolicies)
		policies.GET("/top", deps.PolicyHandler.GetTopPolicies)
		policies.GET("/:id", deps.PolicyHandler.GetPolicy)
		policies.PUT("/:id", deps.PolicyHandler.UpdatePolicy)
		policies.DELETE("/:id", deps.PolicyHandler.DeletePolicy)
	}

	// Transaction routes
	transactions := router.Group("/transactions")
	{
		transactions.POST("", deps.TransactionHandler.Record)
		transactions.GET("", deps.TransactionHandler.GetTransactions)
	}

	// Blog routes
	blogs := router.Group("/blogs")
	{
		blogs.POST("", deps.BlogHandler.CreateBlog)
		blogs.GET("", deps.BlogHandler.GetBlogs)
		blogs.GET("/latest", deps.BlogHandler.GetLatestBlogs)
		blogs.GET("/:id", deps.BlogHandler.GetBlog)
		blogs.PUT("/:id", deps.BlogHandler.UpdateBlog)
		blogs.DELETE("/:id", deps.BlogHandler.DeleteBlog)
	}

	// Review routes
	reviews := router.Group("/reviews")
	{
		reviews.POST("", deps.ReviewHandler.AddReview)
		reviews.GET("/latest", deps.ReviewHandler.GetLatestReviews)
	}

	// Claim routes
	claims := router.Group("/claims")
	{
		claims.POST("", deps.ClaimHandler.FileClaim)
		claims.GET("", deps.ClaimHandler.GetClaims)
		claims.PATCH("/:id/status", deps.ClaimHandler.UpdateStatus)
	}

	// Newsletter signup
	router.POST("/newsletter-subscriptions", deps.NewsletterHandler.Subscribe)

	// Payment intent
	router.POST("/create-payment-intent", deps.PaymentHandler.CreatePaymentIntent)

	return router
}
