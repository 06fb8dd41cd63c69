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

func ListScientists(ctx context.Context, db *gorm.DB) ([]models.Scientist, error) {
	var scientists []models.Scientist

	if err := db.WithContext(ctx).Order("id").Find(&scientists).Error; err != nil {
		return nil, fmt.Errorf("list scientists: %w", err)
	}

	return scientists, nil
}

// GetScientist loads a scientist with its missions, and each mission's
// planet. Missions do not carry their scientist back.
func GetScientist(ctx context.Context, db *gorm.DB, id uint) (models.Scientist, error) {
	var scientist models.Scientist

	err := db.WithContext(ctx).
		Preload("Missions", func(tx *gorm.DB) *gorm.DB { return tx.Order("missions.id") }).
		Preload("Missions.Planet").
		First(&scientist, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Scientist{}, &models.NotFoundError{Entity: "scientist", ID: id}
		}
		return models.Scientist{}, fmt.Errorf("get scientist %d: %w", id, err)
	}

	return scientist, nil
}

func CreateScientist(ctx context.Context, db *gorm.DB, scientist *models.Scientist) error {
	if err := scientist.Validate(); err != nil {
		return rejected(err)
	}

	if err := db.WithContext(ctx).Omit(clause.Associations).Create(scientist).Error; err != nil {
		return rejected(fmt.Errorf("create scientist: %w", err))
	}

	log.Ctx(ctx).Debug().Uint("scientist_id", scientist.ID).Msg("created scientist")
	return nil
}

// PatchScientist applies the allow-listed fields to the stored scientist.
// The stored row is left untouched if the patch is rejected.
func PatchScientist(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (models.Scientist, error) {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var scientist models.Scientist

		if err := tx.First(&scientist, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "scientist", ID: id}
			}
			return err
		}

		if err := models.ApplyScientistPatch(&scientist, fields); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(&scientist).Error
	})

	if err != nil {
		if models.IsNotFound(err) {
			return models.Scientist{}, err
		}
		return models.Scientist{}, rejected(fmt.Errorf("patch scientist %d: %w", id, err))
	}

	return GetScientist(ctx, db, id)
}

// DeleteScientist removes the scientist and every mission it owns in one
// transaction, returning how many missions went with it.
func DeleteScientist(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	var cascaded int64

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var scientist models.Scientist

		if err := tx.First(&scientist, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "scientist", ID: id}
			}
			return err
		}

		result := tx.Where("scientist_id = ?", id).Delete(&models.Mission{})
		if result.Error != nil {
			return result.Error
		}
		cascaded = result.RowsAffected

		return tx.Delete(&scientist).Error
	})

	if err != nil {
		if models.IsNotFound(err) {
			return 0, err
		}
		return 0, fmt.Errorf("delete scientist %d: %w", id, err)
	}

	metrics.CascadeDeletedMissions.WithLabelValues("scientist").Add(float64(cascaded))
	log.Ctx(ctx).Info().Uint("scientist_id", id).Int64("missions", cascaded).Msg("deleted scientist")

	return cascaded, nil
}

// ScientistPlanets returns the distinct planets the scientist reaches through
// its missions.
func ScientistPlanets(ctx context.Context, db *gorm.DB, id uint) ([]models.Planet, error) {
	var planets []models.Planet

	err := db.WithContext(ctx).
		Distinct("planets.*").
		Joins("JOIN missions ON missions.planet_id = planets.id").
		Where("missions.scientist_id = ?", id).
		Order("planets.id").
		Find(&planets).Error

	if err != nil {
		return nil, fmt.Errorf("planets of scientist %d: %w", id, err)
	}

	return planets, nil
}
