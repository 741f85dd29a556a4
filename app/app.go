package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"sanchez-brick/app/controller"
	"sanchez-brick/app/router"
	"sanchez-brick/calculator"
	"sanchez-brick/config"
	"sanchez-brick/db"
	"sanchez-brick/models"
	"sanchez-brick/repository"
	"sanchez-brick/service"
)

// Initialize builds the product store, services and controllers and returns the HTTP handler
func Initialize(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	products, err := loadProducts(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Initialize repository
	productRepo, err := repository.NewProductRepository(products)
	if err != nil {
		return nil, fmt.Errorf("failed to build product store: %w", err)
	}

	renderer, err := service.NewPageRenderer()
	if err != nil {
		return nil, err
	}

	// Drive is only needed for drive:<fileId> images
	var driveService service.DriveServiceInterface
	if cfg.HasDriveCredentials() {
		ds, err := service.NewDriveService(ctx, cfg.GoogleCredentialsPath, cfg.GoogleCredentialsJSON)
		if err != nil {
			return nil, err
		}
		driveService = ds
	} else {
		log.Info().Msg("ℹ️  Google Drive credentials not set, serving local product images only")
	}

	optimizer := service.NewImageOptimizer(cfg.ImageCacheDir)
	if err := optimizer.EnsureCacheDir(); err != nil {
		return nil, err
	}
	imageService := service.NewProductImageService(productRepo, driveService, optimizer, cfg.AssetsDir)
	renderService := service.NewRenderService(cfg.BaseURL, cfg.ChromePath)
	engine := calculator.NewEngine(cfg.DefaultPalletCapacity)

	// Create controllers
	controllers := &router.Controllers{
		Catalog:    controller.NewCatalogController(productRepo, renderer),
		Product:    controller.NewProductController(productRepo, renderer, renderService, imageService),
		Calculator: controller.NewCalculatorController(productRepo, engine, renderer),
		Contact:    controller.NewContactController(productRepo, renderer),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers, cfg.AssetsDir)

	return router.LogRequests(mux), nil
}

// loadProducts reads the catalogue from Postgres when configured, otherwise the built-in seed
func loadProducts(ctx context.Context, cfg *config.Config) ([]models.Product, error) {
	if cfg.DatabaseURL == "" {
		log.Info().Msg("ℹ️  No database configured, using built-in catalogue")
		return repository.SeedProducts(), nil
	}

	// Initialize database connection
	if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	products, err := repository.LoadProductsFromDB(ctx, db.DB)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("✓ Loaded %d products from database", len(products))
	return products, nil
}
