// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookstore/config"
	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/router/handler"
	"bookstore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	LocationHandler *handler.LocationHandler
	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	ReviewHandler   *handler.ReviewHandler
	ReportHandler   *handler.ReportHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	locationHandler *handler.LocationHandler
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	reviewHandler   *handler.ReviewHandler
	reportHandler   *handler.ReportHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		locationHandler: params.LocationHandler,
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		reviewHandler:   params.ReviewHandler,
		reportHandler:   params.ReportHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/health/ready", r.healthHandler.Ready)

	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	apiV1 := e.Group("/api/v1")

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Location tree: reads are public, writes are for admins
	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.GET("", r.locationHandler.ListLocations)
		locationsGroup.GET("/:code", r.locationHandler.GetLocation)
		locationsGroup.GET("/:type/children", r.locationHandler.ListChildren)
		locationsGroup.GET("/:code/full-path", r.locationHandler.GetFullPath)
		locationsGroup.GET("/:code/ancestor", r.locationHandler.GetAncestor)

		locationsGroup.POST("", r.locationHandler.CreateLocation, authenticate, adminOnly)
		locationsGroup.PATCH("/:code", r.locationHandler.RenameLocation, authenticate, adminOnly)
		locationsGroup.DELETE("/:id", r.locationHandler.DeleteLocation, authenticate, adminOnly)
	}

	// User routes that require authentication
	usersGroup := apiV1.Group("/users")
	usersGroup.Use(authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetProfile)
		usersGroup.PATCH("/me", r.userHandler.UpdateProfile)
		usersGroup.PUT("/me/password", r.userHandler.ChangePassword)
		usersGroup.PUT("/me/location", r.userHandler.AssignMyLocation)

		// Administration of other accounts
		usersGroup.GET("", r.userHandler.ListUsers, adminOnly)
		usersGroup.GET("/count", r.userHandler.CountUsers, adminOnly)
		usersGroup.GET("/by-ancestor", r.locationHandler.UsersByAncestor, adminOnly)
		usersGroup.GET("/:id", r.userHandler.GetUser, adminOnly)
		usersGroup.PUT("/:id/role", r.userHandler.ChangeRole, adminOnly)
		usersGroup.PUT("/:id/location", r.userHandler.AssignLocation, adminOnly)
		usersGroup.GET("/:id/total-spent", r.userHandler.UserTotalSpent, adminOnly)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, adminOnly)
	}

	// Catalog: browsing is public, changes are for admins
	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
		categoriesGroup.GET("/:id", r.catalogHandler.GetCategory)
		categoriesGroup.GET("/:id/has-books", r.catalogHandler.CategoryHasBooks, authenticate, adminOnly)

		categoriesGroup.POST("", r.catalogHandler.CreateCategory, authenticate, adminOnly)
		categoriesGroup.PUT("/:id", r.catalogHandler.RenameCategory, authenticate, adminOnly)
		categoriesGroup.DELETE("/:id", r.catalogHandler.DeleteCategory, authenticate, adminOnly)
	}

	booksGroup := apiV1.Group("/books")
	{
		booksGroup.GET("", r.catalogHandler.SearchBooks)
		booksGroup.GET("/:id", r.catalogHandler.GetBook)
		booksGroup.GET("/:id/reviews", r.reviewHandler.ListBookReviews)
		booksGroup.GET("/:id/rating", r.reviewHandler.BookRating)

		booksGroup.POST("", r.catalogHandler.CreateBook, authenticate, adminOnly)
		booksGroup.PATCH("/:id", r.catalogHandler.UpdateBook, authenticate, adminOnly)
		booksGroup.PUT("/:id/stock", r.catalogHandler.SetStock, authenticate, adminOnly)
		booksGroup.POST("/:id/stock/decrease", r.catalogHandler.DecreaseStock, authenticate, adminOnly)
		booksGroup.DELETE("/:id", r.catalogHandler.DeleteBook, authenticate, adminOnly)
	}

	cartGroup := apiV1.Group("/cart")
	cartGroup.Use(authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.GET("/items", r.cartHandler.ListItems)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(authenticate)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/total-spent", r.userHandler.MyTotalSpent)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)

		ordersGroup.GET("/status/:status", r.orderHandler.ListByStatus, adminOnly)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus, adminOnly)
	}

	paymentsGroup := apiV1.Group("/payments")
	paymentsGroup.Use(authenticate)
	{
		paymentsGroup.POST("", r.paymentHandler.CreatePayment)
		paymentsGroup.GET("", r.paymentHandler.ListMyPayments)
		paymentsGroup.GET("/:id", r.paymentHandler.GetPayment)

		paymentsGroup.POST("/:id/process", r.paymentHandler.ProcessPayment, adminOnly)
		paymentsGroup.POST("/:id/fail", r.paymentHandler.FailPayment, adminOnly)
	}

	// Sales reports for administrators
	reportsGroup := apiV1.Group("/reports")
	reportsGroup.Use(authenticate, adminOnly)
	{
		reportsGroup.GET("/orders", r.reportHandler.OrdersByDateRange)
		reportsGroup.GET("/orders/by-location/:code", r.reportHandler.OrdersByLocation)
		reportsGroup.GET("/revenue", r.reportHandler.Revenue)
		reportsGroup.GET("/best-sellers", r.reportHandler.BestSellers)
		reportsGroup.GET("/books/:id/sold", r.reportHandler.QuantitySold)
		reportsGroup.GET("/sales", r.reportHandler.SalesStatistics)
	}

	reviewsGroup := apiV1.Group("/reviews")
	reviewsGroup.Use(authenticate)
	{
		reviewsGroup.POST("", r.reviewHandler.CreateReview)
		reviewsGroup.PATCH("/:id", r.reviewHandler.UpdateReview)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}
}
