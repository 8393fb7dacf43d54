package main

import (
	"gestion_casos_go/config"
	"gestion_casos_go/db"
	"gestion_casos_go/handlers"
	"gestion_casos_go/models"
	"gestion_casos_go/services"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Cliente{},
		&models.Caso{},
		&models.Expediente{},
		&models.Especializacion{},
		&models.Lugar{},
		&models.Abogado{},
		&models.AbogadoEspecializacion{},
		&models.EspeciaEtapa{},
		&models.Impugnacion{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Reference catalogs must exist before the first request
	if err := services.SeedReferenceData(db.DB); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
	if cfg.SeedDemoData {
		if err := services.SeedDemoClientes(db.DB); err != nil {
			log.Fatalf("Failed to seed demo clients: %v", err)
		}
	}

	// Report archive storage (R2 with local fallback)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Deployments differ on the prefix, so every route is reachable both
	// bare and under /api/caso
	registerRoutes(e.Group(""))
	registerRoutes(e.Group("/api/caso"))

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func registerRoutes(g *echo.Group) {
	// Case management
	g.GET("/especializaciones/", handlers.EspecializacionesHandler)
	g.GET("/buscar_cliente/", handlers.BuscarClienteHandler)
	g.POST("/buscar_cliente/", handlers.BuscarClienteHandler)
	g.POST("/crear_caso/", handlers.CrearCasoHandler)
	g.POST("/guardar_caso/", handlers.GuardarCasoHandler)
	g.GET("/buscar_caso/:nocaso/", handlers.BuscarCasoHandler)

	// Case files
	g.GET("/abogados/", handlers.AbogadosHandler)
	g.GET("/ciudades/", handlers.CiudadesHandler)
	g.GET("/entidades/", handlers.EntidadesHandler)
	g.GET("/impugnaciones/", handlers.ImpugnacionesHandler)
	g.POST("/crear_expediente/", handlers.CrearExpedienteHandler)
	g.POST("/guardar_expediente/", handlers.GuardarExpedienteHandler)

	// Tools
	g.POST("/importar_clientes/", handlers.ImportarClientesHandler)
	g.GET("/plantilla_clientes/", handlers.PlantillaClientesHandler)
	g.GET("/reporte_caso/:nocaso/", handlers.ReporteCasoHandler)
}
