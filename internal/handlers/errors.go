package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/starmap-dev/starmap/internal/models"
	"github.com/starmap-dev/starmap/internal/types"
)

// respondError maps repository errors onto the API's status codes. The
// validation payload is deliberately the same for every cause.
func respondError(ctx *gin.Context, notFound string, err error) {
	_ = ctx.Error(err)

	switch {
	case models.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case models.IsValidation(err):
		log.Ctx(ctx.Request.Context()).Debug().Err(err).Msg("rejected write")
		respondInvalid(ctx)
	default:
		log.Ctx(ctx.Request.Context()).Error().Err(err).Msg("request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func respondInvalid(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, gin.H{"errors": []string{types.ValidationErrorMessage}})
}
