package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/starmap-dev/starmap/internal/metrics"
	"github.com/starmap-dev/starmap/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListPlanets(ctx context.Context, db *gorm.DB) ([]models.Planet, error) {
	var planets []models.Planet

	if err := db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}

	return planets, nil
}

func GetPlanet(ctx context.Context, db *gorm.DB, id uint) (models.Planet, error) {
	var planet models.Planet

	err := db.WithContext(ctx).
		Preload("Missions", func(tx *gorm.DB) *gorm.DB { return tx.Order("missions.id") }).
		Preload("Missions.Scientist").
		First(&planet, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Planet{}, &models.NotFoundError{Entity: "planet", ID: id}
		}
		return models.Planet{}, fmt.Errorf("get planet %d: %w", id, err)
	}

	return planet, nil
}

func CreatePlanet(ctx context.Context, db *gorm.DB, planet *models.Planet) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(planet).Error; err != nil {
		return fmt.Errorf("create planet: %w", err)
	}

	log.Ctx(ctx).Debug().Uint("planet_id", planet.ID).Msg("created planet")
	return nil
}

// DeletePlanet removes the planet and every mission bound to it.
func DeletePlanet(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	var cascaded int64

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planet models.Planet

		if err := tx.First(&planet, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "planet", ID: id}
			}
			return err
		}

		result := tx.Where("planet_id = ?", id).Delete(&models.Mission{})
		if result.Error != nil {
			return result.Error
		}
		cascaded = result.RowsAffected

		return tx.Delete(&planet).Error
	})

	if err != nil {
		if models.IsNotFound(err) {
			return 0, err
		}
		return 0, fmt.Errorf("delete planet %d: %w", id, err)
	}

	metrics.CascadeDeletedMissions.WithLabelValues("planet").Add(float64(cascaded))
	log.Ctx(ctx).Info().Uint("planet_id", id).Int64("missions", cascaded).Msg("deleted planet")

	return cascaded, nil
}

// PlanetScientists returns the distinct scientists reaching the planet
// through their missions.
func PlanetScientists(ctx context.Context, db *gorm.DB, id uint) ([]models.Scientist, error) {
	var scientists []models.Scientist

	err := db.WithContext(ctx).
		Distinct("scientists.*").
		Joins("JOIN missions ON missions.scientist_id = scientists.id").
		Where("missions.planet_id = ?", id).
		Order("scientists.id").
		Find(&scientists).Error

	if err != nil {
		return nil, fmt.Errorf("scientists of planet %d: %w", id, err)
	}

	return scientists, nil
}
