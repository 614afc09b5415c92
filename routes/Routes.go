package routes

import (
	"github.com/gofiber/fiber/v2"

	"optifolio.app/controllers"
)

func SetupRoutes(app *fiber.App) {
	controllers.InitTransactionRoutes(app)
	controllers.InitSimulationRoutes(app)
	controllers.InitPortfolioRoutes(app)
	controllers.InitSearchRoutes(app)
}
