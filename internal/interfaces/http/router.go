package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandelis/warehouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	IntakeUC       *usecase.IntakeUseCase
	MovementUC     *usecase.MovementUseCase
	BarcodeUC      *usecase.BarcodeUseCase
	GroupUC        *usecase.ReferenceUseCase
	SupplierUC     *usecase.ReferenceUseCase
	ManufacturerUC *usecase.ReferenceUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.Search)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id/invoices", productHandler.Invoices)
	products.Patch("/:id/quantity", productHandler.AdjustQuantity)
	products.Delete("/:id", productHandler.Delete)

	// Intake (escaneo)
	intake := api.Group("/intake")
	intakeHandler := NewIntakeHandler(deps.IntakeUC)
	intake.Post("/scan", intakeHandler.Scan)

	// Movements
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.Search)

	// Barcodes
	barcodes := api.Group("/barcodes")
	barcodeHandler := NewBarcodeHandler(deps.BarcodeUC)
	barcodes.Post("/reserve", barcodeHandler.Reserve)
	barcodes.Post("/assign/:productId", barcodeHandler.Assign)

	// Catálogos (administración)
	registerReference(api, "/groups", deps.GroupUC)
	registerReference(api, "/suppliers", deps.SupplierUC)
	registerReference(api, "/manufacturers", deps.ManufacturerUC)
}

func registerReference(api fiber.Router, path string, uc *usecase.ReferenceUseCase) {
	group := api.Group(path)
	handler := NewReferenceHandler(uc)
	group.Get("/", handler.List)
	group.Post("/", handler.Create)
}
