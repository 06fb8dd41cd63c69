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

const planetNotFound = "Planet not found"

type CreatePlanetRequest struct {
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

func ListPlanets(ctx *gin.Context) {
	planets, err := services.ListPlanets(ctx.Request.Context(), db.DB)

	if err != nil {
		respondError(ctx, planetNotFound, err)
		return
	}

	response := make([]types.PlanetSummary, 0, len(planets))

	for _, planet := range planets {
		response = append(response, types.NewPlanetSummary(planet))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreatePlanet(ctx *gin.Context) {
	var body CreatePlanetRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondInvalid(ctx)
		return
	}

	planet := models.Planet{
		Name:              body.Name,
		DistanceFromEarth: body.DistanceFromEarth,
		NearestStar:       body.NearestStar,
	}

	if err := services.CreatePlanet(ctx.Request.Context(), db.DB, &planet); err != nil {
		respondError(ctx, planetNotFound, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewPlanetSummary(planet))
}

func GetPlanet(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": planetNotFound})
		return
	}

	planet, err := services.GetPlanet(ctx.Request.Context(), db.DB, id)

	if err != nil {
		respondError(ctx, planetNotFound, err)
		return
	}

	scientists, err := services.PlanetScientists(ctx.Request.Context(), db.DB, id)

	if err != nil {
		respondError(ctx, planetNotFound, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewPlanetDetail(planet, scientists))
}

func DeletePlanet(ctx *gin.Context) {
	id, err := utils.GetID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": planetNotFound})
		return
	}

	if _, err := services.DeletePlanet(ctx.Request.Context(), db.DB, id); err != nil {
		respondError(ctx, planetNotFound, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
