// internal/interfaces/http/routes/routes.go
package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/discount"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/proof"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/pkg/email"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// SetupRoutes wires every route group under /api/v1
func SetupRoutes(rg *gin.RouterGroup, fsClient *firestore.Client, redisClient *redis.Client, discounts *discount.Service, cfg *config.Config, logger *logrus.Logger) {
	cartStore := cart.NewRedisStore(redisClient)
	orderStore := order.NewFirestoreStore(fsClient)
	encoder := proof.NewEncoder(proof.NewRedisStore(redisClient, cfg.Proof.TTL), cfg.Proof.MaxSize)
	mailer := email.NewService(cfg, logger)
	checkoutService := checkout.NewService(cartStore, orderStore, encoder, mailer, cfg, logger)

	homeHandler := handlers.NewHomeHandler(cfg)
	catalogHandler := handlers.NewCatalogHandler(fsClient, discounts)
	cartHandler := handlers.NewCartHandler(cartStore)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, encoder)
	orderHandler := handlers.NewOrderHandler(order.NewService(orderStore), pdf.NewService(cfg))

	rg.GET("/home", homeHandler.GetHome)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	rg.GET("/categories", catalogHandler.GetCategories)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.PUT("", cartHandler.ReplaceCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("/summary", checkoutHandler.GetSummary)
		checkoutGroup.POST("/validate", checkoutHandler.ValidateForm)
		checkoutGroup.POST("/proofs/:slot", checkoutHandler.UploadProof)
		checkoutGroup.DELETE("/proofs/:slot", checkoutHandler.RemoveProof)
		checkoutGroup.POST("/orders", checkoutHandler.PlaceOrder)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.GetReceipt)
	}
}
