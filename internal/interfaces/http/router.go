package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/modelcar-catalog/internal/application/auth"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	BrandUC     *usecase.BrandUseCase
	ProductUC   *usecase.ProductUseCase
	AccessoryUC *usecase.PartUseCase
	SparePartUC *usecase.PartUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las lecturas del catálogo son
// públicas; toda escritura exige Bearer Token y los usuarios además
// pasan por control de rol o propiedad.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Users (protegido; listado y borrado solo admin)
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/password", userHandler.UpdatePassword)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Brands (lectura pública, escritura protegida)
	brands := api.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Post("/", authRequired, brandHandler.Create)
	brands.Put("/:id", authRequired, brandHandler.Update)
	brands.Delete("/:id", authRequired, brandHandler.Delete)

	// Products (lectura pública, escritura protegida)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/slug/:slug", productHandler.GetBySlug)
	products.Get("/:id/spare-parts", productHandler.WithSpareParts)
	products.Get("/:id/accessories", productHandler.WithAccessories)
	products.Get("/:id/complete", productHandler.Complete)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authRequired, productHandler.Create)
	products.Put("/:id", authRequired, productHandler.Update)
	products.Delete("/:id", authRequired, productHandler.Delete)

	registerPartRoutes(api.Group("/accessories"), NewPartHandler(deps.AccessoryUC), authRequired)
	registerPartRoutes(api.Group("/spare-parts"), NewPartHandler(deps.SparePartUC), authRequired)
}

// registerPartRoutes monta el mismo CRUD para accesorios y repuestos.
func registerPartRoutes(group fiber.Router, handler *PartHandler, authRequired fiber.Handler) {
	group.Get("/", handler.List)
	group.Get("/slug/:slug", handler.GetBySlug)
	group.Get("/product/:productId", handler.ForProduct)
	group.Get("/:id", handler.GetByID)
	group.Post("/", authRequired, handler.Create)
	group.Put("/:id", authRequired, handler.Update)
	group.Delete("/:id", authRequired, handler.Delete)
}
