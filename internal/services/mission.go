package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/starmap-dev/starmap/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateMission persists a mission once both of its owners are known to
// exist. On success the mission is returned with Scientist and Planet set.
func CreateMission(ctx context.Context, db *gorm.DB, mission *models.Mission) error {
	if err := mission.Validate(); err != nil {
		return rejected(err)
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&mission.Scientist, mission.ScientistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.ValidationError{Entity: "mission", Field: "scientist_id", Reason: "references no scientist"}
			}
			return err
		}

		if err := tx.First(&mission.Planet, mission.PlanetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.ValidationError{Entity: "mission", Field: "planet_id", Reason: "references no planet"}
			}
			return err
		}

		return tx.Omit(clause.Associations).Create(mission).Error
	})

	if err != nil {
		return rejected(fmt.Errorf("create mission: %w", err))
	}

	log.Ctx(ctx).Debug().
		Uint("mission_id", mission.ID).
		Uint("scientist_id", mission.ScientistID).
		Uint("planet_id", mission.PlanetID).
		Msg("created mission")

	return nil
}

func GetMission(ctx context.Context, db *gorm.DB, id uint) (models.Mission, error) {
	var mission models.Mission

	if err := db.WithContext(ctx).Preload("Scientist").Preload("Planet").First(&mission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Mission{}, &models.NotFoundError{Entity: "mission", ID: id}
		}
		return models.Mission{}, fmt.Errorf("get mission %d: %w", id, err)
	}

	return mission, nil
}

// DeleteMission removes only the mission; its scientist and planet stay.
func DeleteMission(ctx context.Context, db *gorm.DB, id uint) error {
	result := db.WithContext(ctx).Delete(&models.Mission{}, id)

	if result.Error != nil {
		return fmt.Errorf("delete mission %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "mission", ID: id}
	}

	return nil
}
