package httpserver

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// InitFiberServer builds the app with the shared middleware chain. views may
// be nil for JSON-only apps; middleware runs after the health checks.
func InitFiberServer(appName string, views fiber.Views, middleware ...fiber.Handler) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:     appName,
		Views:       views,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		BodyLimit:   64 * 1024,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	for _, m := range middleware {
		s.Use(m)
	}

	return s
}
