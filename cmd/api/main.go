package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/modelcar-catalog/internal/application/auth"
	"github.com/tu-usuario/modelcar-catalog/internal/application/usecase"
	"github.com/tu-usuario/modelcar-catalog/internal/infrastructure/mongodb"
	httpRouter "github.com/tu-usuario/modelcar-catalog/internal/interfaces/http"
	"github.com/tu-usuario/modelcar-catalog/pkg/config"
	"github.com/tu-usuario/modelcar-catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	db := mongodb.Database(client, cfg.Mongo)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	accessoryRepo := mongodb.NewAccessoryRepository(db)
	sparePartRepo := mongodb.NewSparePartRepository(db)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	brandUC := usecase.NewBrandUseCase(brandRepo)
	productUC := usecase.NewProductUseCase(productRepo, brandRepo, accessoryRepo, sparePartRepo)
	accessoryUC := usecase.NewPartUseCase("accesorio", accessoryRepo, productRepo, brandRepo)
	sparePartUC := usecase.NewPartUseCase("repuesto", sparePartRepo, productRepo, brandRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ModelCar Catalog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		BrandUC:     brandUC,
		ProductUC:   productUC,
		AccessoryUC: accessoryUC,
		SparePartUC: sparePartUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
