package router

import (
	"time"

	"qrmenu/internal/auth"
	"qrmenu/internal/importer"
	"qrmenu/internal/menu"
	"qrmenu/internal/middleware"
	"qrmenu/internal/offers"
	"qrmenu/internal/pricing"
	"qrmenu/internal/public"
	"qrmenu/internal/qrcode"
	"qrmenu/internal/restaurant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects every feature handler the API mounts.
type Handlers struct {
	Auth       *auth.Handler
	Restaurant *restaurant.Handler
	Menu       *menu.Handler
	Importer   *importer.Handler
	Offers     *offers.Handler
	Pricing    *pricing.Handler
	QRCode     *qrcode.Handler
	Public     *public.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── PUBLIC MENU ─────────────────────────
	r.GET("/m/:slug", h.Public.GetMenu)

	// ───────────────────────── OWNER DASHBOARD ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleOwner),
	)
	{
		restaurants.POST("", h.Restaurant.Create)
		restaurants.GET("/me", h.Restaurant.ListMine)
		restaurants.POST("/:restaurantId/logo", h.Restaurant.UploadLogo)

		// Menu hierarchy
		restaurants.POST("/:restaurantId/categories", h.Menu.CreateCategory)
		restaurants.GET("/:restaurantId/categories", h.Menu.ListCategories)
		restaurants.PUT("/:restaurantId/categories/:categoryID", h.Menu.UpdateCategory)
		restaurants.DELETE("/:restaurantId/categories/:categoryID", h.Menu.DeleteCategory)
		restaurants.POST("/:restaurantId/categories/:categoryID/subcategories", h.Menu.CreateSubCategory)
		restaurants.POST("/:restaurantId/subcategories/:subCategoryID/items", h.Menu.CreateItem)
		restaurants.PUT("/:restaurantId/items/:itemID", h.Menu.UpdateItem)
		restaurants.DELETE("/:restaurantId/items/:itemID", h.Menu.DeleteItem)
		restaurants.GET("/:restaurantId/menu", h.Menu.GetTree)

		// Offers
		restaurants.POST("/:restaurantId/offers", h.Offers.Create)
		restaurants.GET("/:restaurantId/offers", h.Offers.List)
		restaurants.POST("/:restaurantId/offers/extract", h.Offers.Extract)
		restaurants.PATCH("/:restaurantId/offers/:offerId/status", h.Offers.SetStatus)
		restaurants.DELETE("/:restaurantId/offers/:offerId", h.Offers.Delete)

		// Pricing rules
		restaurants.POST("/:restaurantId/pricing-rules", h.Pricing.Create)
		restaurants.GET("/:restaurantId/pricing-rules", h.Pricing.List)
		restaurants.PATCH("/:restaurantId/pricing-rules/:ruleId/active", h.Pricing.SetActive)
		restaurants.DELETE("/:restaurantId/pricing-rules/:ruleId", h.Pricing.Delete)

		// QR codes
		restaurants.POST("/:restaurantId/qr", h.QRCode.Generate)
		restaurants.GET("/:restaurantId/qr", h.QRCode.Get)
	}

	// ───────────────────────── MENU FILE IMPORT ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.POST("/import", h.Importer.Import)
	}

	return r
}
