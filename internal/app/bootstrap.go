package app

import (
	"fmt"
	"strings"

	"jedx-skills/internal/catalog"
	"jedx-skills/internal/config"
	"jedx-skills/internal/delivery/http/middleware"
	"jedx-skills/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber   *fiber.App
	Catalog *catalog.Catalog
}

func New(cfg config.Config) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	cat := catalog.New()

	registerGlobalMiddleware(f)
	routes.NewRegistry(cat).Register(f)

	return &App{Fiber: f, Catalog: cat}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	app := New(cfg)
	return app, func() error { return nil }, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
	}))

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(nil)
	app.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
