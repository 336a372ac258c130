package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CartUC     *cart.CartUseCase
	CheckoutUC *checkout.CheckoutUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	customerOnly := RequireRole(entity.RoleCustomer)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products: lectura pública, mutaciones solo admin
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authRequired, adminOnly, productHandler.Create)
	products.Put("/:id", authRequired, adminOnly, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	// Cart (rol customer)
	cartGroup := api.Group("/cart", authRequired, customerOnly)
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/", cartHandler.SetItem)
	cartGroup.Delete("/:productId", cartHandler.RemoveItem)

	// Orders (rol customer)
	orders := api.Group("/orders", authRequired, customerOnly)
	orderHandler := NewOrderHandler(deps.CheckoutUC)
	orders.Post("/", orderHandler.PlaceOrder)
	orders.Get("/", orderHandler.ListOrders)
}
