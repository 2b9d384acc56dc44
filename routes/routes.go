package routes

import (
	"time"

	"github.com/Avidasevi/surebetsistem/controllers/admin"
	"github.com/Avidasevi/surebetsistem/controllers/alerta"
	"github.com/Avidasevi/surebetsistem/controllers/aposta"
	"github.com/Avidasevi/surebetsistem/controllers/auth"
	"github.com/Avidasevi/surebetsistem/controllers/banca"
	"github.com/Avidasevi/surebetsistem/controllers/calculo"
	"github.com/Avidasevi/surebetsistem/controllers/dashboard"
	"github.com/Avidasevi/surebetsistem/controllers/surebets"
	"github.com/Avidasevi/surebetsistem/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")
	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)

	protected := api.Group("", middlewares.AuthMiddleware)
	protected.Get("/bancas", banca.ListBancas)
	protected.Post("/bancas", banca.CreateBanca)
	protected.Get("/apostas", aposta.ListApostas)
	protected.Post("/apostas", aposta.CreateAposta)
	protected.Get("/dashboard", dashboard.Dashboard)
	protected.Get("/dashboard/charts", dashboard.Charts)
	protected.Get("/calculos", calculo.ListCalculos)
	protected.Post("/calculos", calculo.CreateCalculo)
	protected.Get("/surebets", surebets.ListSurebets)
	protected.Get("/alertas", alerta.ListAlertas)

	adminRoutes := protected.Group("/admin", middlewares.AdminOnly)
	adminRoutes.Get("/stats", admin.Stats)
	adminRoutes.Get("/users", admin.ListUsers)
	adminRoutes.Patch("/users/:id/approve", admin.ApproveUser)
	adminRoutes.Patch("/users/:id/reject", admin.RejectUser)
	adminRoutes.Patch("/users/:id", admin.UpdateUser)
	adminRoutes.Delete("/users/:id", admin.DeleteUser)
	adminRoutes.Get("/bancas", admin.ListBancas)
	adminRoutes.Delete("/bancas/:id", admin.DeleteBanca)
	adminRoutes.Get("/apostas", admin.ListApostas)
	adminRoutes.Delete("/apostas/:id", admin.DeleteAposta)
}
