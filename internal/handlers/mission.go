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

const missionNotFound = "Mission not found"

type CreateMissionRequest struct {
	Name        string `json:"name"`
	ScientistID uint   `json:"scientist_id"`
	PlanetID    uint   `json:"planet_id"`
}

func CreateMission(ctx *gin.Context) {
	var body CreateMissionRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondInvalid(ctx)
		return
	}

	mission := models.Mission{
		Name:        body.Name,
		ScientistID: body.ScientistID,
		PlanetID:    body.PlanetID,
	}

	if err := services.CreateMission(ctx.Request.Context(), db.DB, &mission); err != nil {
		respondError(ctx, missionNotFound, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewMissionDetail(mission))
}

func GetMission(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": missionNotFound})
		return
	}

	mission, err := services.GetMission(ctx.Request.Context(), db.DB, id)

	if err != nil {
		respondError(ctx, missionNotFound, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewMissionDetail(mission))
}

func DeleteMission(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": missionNotFound})
		return
	}

	if err := services.DeleteMission(ctx.Request.Context(), db.DB, id); err != nil {
		respondError(ctx, missionNotFound, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
