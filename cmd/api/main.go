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
	"github.com/sandelis/warehouse-api/internal/application/usecase"
	"github.com/sandelis/warehouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/sandelis/warehouse-api/internal/interfaces/http"
	"github.com/sandelis/warehouse-api/pkg/config"
	"github.com/sandelis/warehouse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	manufacturerRepo := postgres.NewManufacturerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(txRunner, productRepo, movementRepo)
	intakeUC := usecase.NewIntakeUseCase(txRunner)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	barcodeUC := usecase.NewBarcodeUseCase(counterRepo, productRepo)
	groupUC := usecase.NewReferenceUseCase(groupRepo)
	supplierUC := usecase.NewReferenceUseCase(supplierRepo)
	manufacturerUC := usecase.NewReferenceUseCase(manufacturerRepo)

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
		Title:    "Warehouse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		IntakeUC:       intakeUC,
		MovementUC:     movementUC,
		BarcodeUC:      barcodeUC,
		GroupUC:        groupUC,
		SupplierUC:     supplierUC,
		ManufacturerUC: manufacturerUC,
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
