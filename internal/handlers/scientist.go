package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/starmap-dev/starmap/db"
	"github.com/starmap-dev/starmap/internal/models"
	"github.com/starmap-dev/starmap/internal/services"
	"github.com/starmap-dev/starmap/internal/types"
	"github.com/starmap-dev/starmap/internal/utils"
)

const scientistNotFound = "Scientist not found"

type CreateScientistRequest struct {
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

func ListScientists(ctx *gin.Context) {
	scientists, err := services.ListScientists(ctx.Request.Context(), db.DB)

	if err != nil {
		respondError(ctx, scientistNotFound, err)
		return
	}

	response := make([]types.ScientistSummary, 0, len(scientists))

	for _, scientist := range scientists {
		response = append(response, types.NewScientistSummary(scientist))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateScientist(ctx *gin.Context) {
	var body CreateScientistRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondInvalid(ctx)
		return
	}

	scientist := models.Scientist{
		Name:         body.Name,
		FieldOfStudy: body.FieldOfStudy,
	}

	if err := services.CreateScientist(ctx.Request.Context(), db.DB, &scientist); err != nil {
		respondError(ctx, scientistNotFound, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewScientistDetail(scientist, nil))
}

func GetScientist(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": scientistNotFound})
		return
	}

	scientist, err := services.GetScientist(ctx.Request.Context(), db.DB, id)

	if err != nil {
		respondError(ctx, scientistNotFound, err)
		return
	}

	planets, err := services.ScientistPlanets(ctx.Request.Context(), db.DB, id)

	if err != nil {
		respondError(ctx, scientistNotFound, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewScientistDetail(scientist, planets))
}

func UpdateScientist(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": scientistNotFound})
		return
	}

	var fields map[string]any

	if err := ctx.ShouldBindJSON(&fields); err != nil {
		// The scientist must exist before a malformed body is reported.
		if _, getErr := services.GetScientist(ctx.Request.Context(), db.DB, id); getErr != nil {
			respondError(ctx, scientistNotFound, getErr)
			return
		}
		respondInvalid(ctx)
		return
	}

	scientist, err := services.PatchScientist(ctx.Request.Context(), db.DB, id, fields)

	if err != nil {
		respondError(ctx, scientistNotFound, err)
		return
	}

	planets, err := services.ScientistPlanets(ctx.Request.Context(), db.DB, id)

	if err != nil {
		respondError(ctx, scientistNotFound, err)
		return
	}

	ctx.JSON(http.StatusAccepted, types.NewScientistDetail(scientist, planets))
}

func DeleteScientist(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": scientistNotFound})
		return
	}

	if _, err := services.DeleteScientist(ctx.Request.Context(), db.DB, id); err != nil {
		respondError(ctx, scientistNotFound, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
