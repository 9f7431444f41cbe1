package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/auth"
	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dashboard"
	"github.com/EdgarCaloch00/CrepePosApi/internal/application/sales"
	"github.com/EdgarCaloch00/CrepePosApi/internal/application/usecase"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CreateSale  *sales.CreateSaleUseCase
	DashboardUC *dashboard.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Menú (cualquier empleado autenticado)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Registro de ventas (cualquier empleado autenticado)
	salesHandler := NewSalesHandler(deps.CreateSale)
	protected.Post("/sales", salesHandler.Create)

	// Dashboard (solo admin y gerente)
	dashboardGroup := protected.Group("/dashboard",
		RequireRole(entity.RoleAdmin, entity.RoleGerente))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboardGroup.Get("/stats", dashboardHandler.GetStats)
}
