package models

import "gorm.io/gorm"

// Mission is the join entity between a Scientist and a Planet.
type Mission struct {
	BaseModel

	Name        string `gorm:"not null"`
	ScientistID uint   `gorm:"not null;index"`
	PlanetID    uint   `gorm:"not null;index"`

	// Relationships
	Scientist Scientist `gorm:"foreignKey:ScientistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Planet    Planet    `gorm:"foreignKey:PlanetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (m *Mission) Validate() error {
	if m.Name == "" {
		return &ValidationError{Entity: "mission", Field: "name", Reason: "must not be empty"}
	}

	if m.ScientistID == 0 {
		return &ValidationError{Entity: "mission", Field: "scientist_id", Reason: "is required"}
	}

	if m.PlanetID == 0 {
		return &ValidationError{Entity: "mission", Field: "planet_id", Reason: "is required"}
	}

	return nil
}

func (m *Mission) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
