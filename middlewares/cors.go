package middlewares

import (
	"time"

	"backend/configs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the origins from config; the default "*" is
// for dev, set CORS_ORIGINS to real domains in prod.
func CORSMiddleware(cfg *configs.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	return cors.New(corsCfg)
}
