package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"adgenie/internal/config"
)

var corsMethods = []string{
	fiber.MethodGet,
	fiber.MethodPost,
	fiber.MethodHead,
	fiber.MethodPut,
	fiber.MethodDelete,
	fiber.MethodPatch,
	fiber.MethodOptions,
}

// CORS applies cross-origin headers to every response and answers preflight requests.
func CORS(cfg config.CORSConfig) fiber.Handler {
	return cors.New(CORSConfig(cfg))
}

// CORSConfig maps the application CORS settings onto Fiber's cors.Config.
//
// A credentialed response may not use a wildcard origin, so "*" combined with
// AllowCredentials reflects the caller's Origin instead. AllowHeaders is left
// empty, which makes Fiber echo Access-Control-Request-Headers on preflight.
func CORSConfig(cfg config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowMethods:     strings.Join(corsMethods, ","),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if !allowsAnyOrigin(cfg.AllowOrigins) {
		out.AllowOrigins = strings.Join(cfg.AllowOrigins, ",")
		return out
	}

	if cfg.AllowCredentials {
		out.AllowOriginsFunc = func(string) bool { return true }
	} else {
		out.AllowOrigins = "*"
	}
	return out
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}
