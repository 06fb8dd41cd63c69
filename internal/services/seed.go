package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/starmap-dev/starmap/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedScientists = []models.Scientist{
	{Name: "Grace Hopper", FieldOfStudy: "Computer Science"},
	{Name: "Vera Rubin", FieldOfStudy: "Astrophysics"},
	{Name: "Carl Sagan", FieldOfStudy: "Planetary Science"},
	{Name: "Katherine Johnson", FieldOfStudy: "Orbital Mechanics"},
}

var seedPlanets = []models.Planet{
	{Name: "Mars", DistanceFromEarth: 225, NearestStar: "Sun"},
	{Name: "Kepler-186f", DistanceFromEarth: 582, NearestStar: "Kepler-186"},
	{Name: "Proxima Centauri b", DistanceFromEarth: 4, NearestStar: "Proxima Centauri"},
	{Name: "TRAPPIST-1e", DistanceFromEarth: 39, NearestStar: "TRAPPIST-1"},
}

// seedMissions pairs indexes into seedScientists and seedPlanets.
var seedMissions = []struct {
	name      string
	scientist int
	planet    int
}{
	{"Red Dust", 0, 0},
	{"Dark Matter Survey", 1, 1},
	{"Pale Blue Dot", 2, 0},
	{"Pale Blue Dot II", 2, 2},
	{"Free Return", 3, 3},
	{"Long Transit", 1, 3},
}

// Seed replaces every row with a small fixed data set.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Mission{}, &models.Scientist{}, &models.Planet{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		scientists := make([]models.Scientist, len(seedScientists))
		copy(scientists, seedScientists)
		if err := tx.Omit(clause.Associations).Create(&scientists).Error; err != nil {
			return fmt.Errorf("seed scientists: %w", err)
		}

		planets := make([]models.Planet, len(seedPlanets))
		copy(planets, seedPlanets)
		if err := tx.Omit(clause.Associations).Create(&planets).Error; err != nil {
			return fmt.Errorf("seed planets: %w", err)
		}

		missions := make([]models.Mission, 0, len(seedMissions))
		for _, m := range seedMissions {
			missions = append(missions, models.Mission{
				Name:        m.name,
				ScientistID: scientists[m.scientist].ID,
				PlanetID:    planets[m.planet].ID,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&missions).Error; err != nil {
			return fmt.Errorf("seed missions: %w", err)
		}

		log.Ctx(ctx).Info().
			Int("scientists", len(scientists)).
			Int("planets", len(planets)).
			Int("missions", len(missions)).
			Msg("seeded database")

		return nil
	})
}
