package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
)

func respondError(c *gin.Context, log *zap.Logger, err error, fallback string) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Business(c, be)
		return
	}

	log.Error("request failed",
		zap.String("route", c.FullPath()),
		zap.String("code", fallback),
		zap.Error(err),
	)
	httperr.Internal(c, fallback, "Something went wrong. Please try again.")
}
