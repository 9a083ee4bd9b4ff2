package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/shafran-admin/internal/handlers"
	"github.com/example/shafran-admin/internal/images"
	"github.com/example/shafran-admin/internal/middleware"
	"github.com/example/shafran-admin/internal/pages"
	"github.com/example/shafran-admin/internal/services"
	"github.com/example/shafran-admin/internal/session"
	"github.com/example/shafran-admin/internal/storage"
)

// ConfirmPrompt is shown before a destructive action runs.
const ConfirmPrompt = "Ushbu amalni tasdiqlaysizmi?"

// Dependencies are the process-wide components the routes serve.
type Dependencies struct {
	Session  *session.Store
	Client   *services.Client
	Storage  storage.Storage
	Previews *images.Previews
	Options  pages.Options
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, d Dependencies) {
	previews := d.Previews
	if previews == nil {
		previews = images.NewPreviews()
	}

	dashboard := pages.NewDashboard(d.Client, d.Client, d.Options)

	authHandler := handlers.NewAuthHandler(d.Session)
	adminHandler := handlers.NewAdminHandler(
		dashboard,
		pages.NewUsers(d.Client, d.Options),
	)
	productHandler := handlers.NewProductHandler(
		pages.NewProducts(d.Client, d.Options),
		pages.NewDeletedProducts(d.Client, d.Options),
		pages.NewProductDetails(d.Client, previews, d.Options),
		dashboard,
	)
	orderHandler := handlers.NewOrderHandler(
		pages.NewOrders(d.Client, d.Options),
		pages.NewOrderDetail(d.Client, d.Options),
		dashboard,
	)
	catalogHandler := handlers.NewCatalogHandler(d.Client)
	profileHandler := handlers.NewProfileHandler(d.Storage)
	previewHandler := handlers.NewPreviewHandler(previews)

	api := app.Group("/api")

	// Session routes
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/session", authHandler.Session)

	// Display preferences survive logout
	api.Get("/preferences/theme", profileHandler.GetTheme)
	api.Put("/preferences/theme", profileHandler.SetTheme)

	// Protected routes
	protected := api.Group("", middleware.SessionGate(d.Session))
	confirm := middleware.RequireConfirmation(ConfirmPrompt)

	protected.Get("/dashboard", adminHandler.DashboardStats)
	protected.Post("/dashboard/users/:id/verify", adminHandler.VerifyDashboardUser)
	protected.Delete("/dashboard/users/:id", confirm, adminHandler.DeleteDashboardUser)

	productHandler.RegisterProductRoutes(protected.Group("/products"), confirm)
	orderHandler.RegisterOrderRoutes(protected.Group("/orders"), confirm)
	adminHandler.RegisterUserRoutes(protected.Group("/users"), confirm)

	protected.Get("/categories", catalogHandler.ListCategories)
	protected.Get("/previews/:handle", previewHandler.GetPreview)
}
