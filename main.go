package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"optifolio.app/cron"
	"optifolio.app/db"
	"optifolio.app/routes"
	"optifolio.app/types"

	_ "optifolio.app/docs"
)

//	@title			Optifolio
//	@version		1.0
//	@description	Personal portfolio tracker for stocks and options: P&L metrics, payoff simulation and multi-currency roll-ups.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	db.Init()

	cron.StartScheduler()

	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		c.Set("Access-Control-Allow-Headers", "Content-Type")
		return c.Next()
	})

	routes.SetupRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(types.Response{
			Success: true,
			Data:    "optifolio",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	port := os.Getenv("LISTEN_PATH")
	if port == "" {
		port = ":3000"
	}
	log.Printf("Swagger UI available at http://localhost%s/swagger/index.html", port)
	log.Fatal(app.Listen(port))
}
