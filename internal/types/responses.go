package types

import "github.com/starmap-dev/starmap/internal/models"

type ScientistSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

type PlanetSummary struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

type MissionSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ScientistID uint   `json:"scientist_id"`
	PlanetID    uint   `json:"planet_id"`
}

// ScientistMission is a mission seen from its scientist: the planet is
// embedded, the scientist is not.
type ScientistMission struct {
	MissionSummary
	Planet PlanetSummary `json:"planet"`
}

// PlanetMission is a mission seen from its planet.
type PlanetMission struct {
	MissionSummary
	Scientist ScientistSummary `json:"scientist"`
}

type MissionDetail struct {
	MissionSummary
	Scientist ScientistSummary `json:"scientist"`
	Planet    PlanetSummary    `json:"planet"`
}

type ScientistDetail struct {
	ScientistSummary
	Missions []ScientistMission `json:"missions"`
	Planets  []PlanetSummary    `json:"planets"`
}

type PlanetDetail struct {
	PlanetSummary
	Missions   []PlanetMission    `json:"missions"`
	Scientists []ScientistSummary `json:"scientists"`
}

func NewScientistSummary(s models.Scientist) ScientistSummary {
	return ScientistSummary{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
	}
}

func NewPlanetSummary(p models.Planet) PlanetSummary {
	return PlanetSummary{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}

func NewMissionSummary(m models.Mission) MissionSummary {
	return MissionSummary{
		ID:          m.ID,
		Name:        m.Name,
		ScientistID: m.ScientistID,
		PlanetID:    m.PlanetID,
	}
}

func NewMissionDetail(m models.Mission) MissionDetail {
	return MissionDetail{
		MissionSummary: NewMissionSummary(m),
		Scientist:      NewScientistSummary(m.Scientist),
		Planet:         NewPlanetSummary(m.Planet),
	}
}

// NewScientistDetail expects s.Missions to be loaded with their planets.
func NewScientistDetail(s models.Scientist, planets []models.Planet) ScientistDetail {
	detail := ScientistDetail{
		ScientistSummary: NewScientistSummary(s),
		Missions:         make([]ScientistMission, 0, len(s.Missions)),
		Planets:          make([]PlanetSummary, 0, len(planets)),
	}

	for _, m := range s.Missions {
		detail.Missions = append(detail.Missions, ScientistMission{
			MissionSummary: NewMissionSummary(m),
			Planet:         NewPlanetSummary(m.Planet),
		})
	}

	for _, p := range planets {
		detail.Planets = append(detail.Planets, NewPlanetSummary(p))
	}

	return detail
}

// NewPlanetDetail expects p.Missions to be loaded with their scientists.
func NewPlanetDetail(p models.Planet, scientists []models.Scientist) PlanetDetail {
	detail := PlanetDetail{
		PlanetSummary: NewPlanetSummary(p),
		Missions:      make([]PlanetMission, 0, len(p.Missions)),
		Scientists:    make([]ScientistSummary, 0, len(scientists)),
	}

	for _, m := range p.Missions {
		detail.Missions = append(detail.Missions, PlanetMission{
			MissionSummary: NewMissionSummary(m),
			Scientist:      NewScientistSummary(m.Scientist),
		})
	}

	for _, s := range scientists {
		detail.Scientists = append(detail.Scientists, NewScientistSummary(s))
	}

	return detail
}
