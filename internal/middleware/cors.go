package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gamers-hub/internal/config"
)

func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        cfg.MaxAge,
	})
}
