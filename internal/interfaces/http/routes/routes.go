// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arumaroma/storefront-backend/internal/domain/cart"
	"github.com/arumaroma/storefront-backend/internal/domain/catalog"
	"github.com/arumaroma/storefront-backend/internal/domain/favorites"
	"github.com/arumaroma/storefront-backend/internal/domain/payment"
	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
	"github.com/arumaroma/storefront-backend/internal/domain/quotes"
	"github.com/arumaroma/storefront-backend/internal/domain/user"
	"github.com/arumaroma/storefront-backend/internal/interfaces/http/handlers"
	"github.com/arumaroma/storefront-backend/internal/interfaces/http/middleware"
	"github.com/arumaroma/storefront-backend/internal/pkg/auth"
)

// Services bundles the wired domain services the routes dispatch to.
// Everything is constructed once in main and injected here.
type Services struct {
	Users       *user.Service
	Reconciler  *catalog.Reconciler
	Cache       *catalog.Cache
	Favorites   *favorites.Service
	Cart        *cart.Service
	Payments    *payment.Service
	Quotes      *quotes.Service
	Prefs       *prefs.Store
	JWT         *auth.JWTManager
	QuotesLimit int
}

// SetupRoutes mounts every API endpoint on the given router group
func SetupRoutes(rg *gin.RouterGroup, svc *Services) {
	authHandler := handlers.NewAuthHandler(svc.Users)
	catalogHandler := handlers.NewCatalogHandler(svc.Reconciler, svc.Cache)
	favoritesHandler := handlers.NewFavoritesHandler(svc.Favorites, svc.Cache)
	cartHandler := handlers.NewCartHandler(svc.Cart, svc.Cache)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Payments, svc.Cart)
	quotesHandler := handlers.NewQuotesHandler(svc.Quotes, svc.QuotesLimit)
	preferencesHandler := handlers.NewPreferencesHandler(svc.Prefs, svc.Payments)

	requireAuth := middleware.AuthMiddleware(svc.JWT)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.RefreshToken)

		protected := authGroup.Group("")
		protected.Use(requireAuth)
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	catalogGroup := rg.Group("/catalog")
	catalogGroup.Use(middleware.OptionalAuthMiddleware(svc.JWT))
	{
		catalogGroup.GET("", catalogHandler.List)
		catalogGroup.GET("/search", catalogHandler.Search)
		catalogGroup.GET("/recommendations", catalogHandler.Recommendations)
		catalogGroup.GET("/:id", catalogHandler.Get)
	}

	favoritesGroup := rg.Group("/favorites")
	favoritesGroup.Use(requireAuth)
	{
		favoritesGroup.GET("", favoritesHandler.List)
		favoritesGroup.POST("/toggle", favoritesHandler.Toggle)
	}

	cartGroup := rg.Group("/cart")
	cartGroup.Use(requireAuth)
	{
		cartGroup.GET("", cartHandler.Get)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.Clear)
	}

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(requireAuth)
	{
		checkoutGroup.POST("/payment", checkoutHandler.ProcessPayment)
	}

	rg.GET("/quotes", quotesHandler.List)

	preferencesGroup := rg.Group("/preferences")
	preferencesGroup.Use(requireAuth)
	{
		preferencesGroup.GET("", preferencesHandler.Get)
		preferencesGroup.PUT("", preferencesHandler.Update)
		preferencesGroup.GET("/card", preferencesHandler.GetCard)
		preferencesGroup.DELETE("/card", preferencesHandler.DeleteCard)
	}
}
