package models

import "gorm.io/gorm"

type Scientist struct {
	BaseModel

	Name         string `gorm:"not null"`
	FieldOfStudy string `gorm:"not null"`

	// Relationships
	Missions []Mission `gorm:"foreignKey:ScientistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Validate reports the first required field that is missing.
func (s *Scientist) Validate() error {
	if s.Name == "" {
		return &ValidationError{Entity: "scientist", Field: "name", Reason: "must not be empty"}
	}

	if s.FieldOfStudy == "" {
		return &ValidationError{Entity: "scientist", Field: "field_of_study", Reason: "must not be empty"}
	}

	return nil
}

func (s *Scientist) BeforeSave(tx *gorm.DB) error {
	return s.Validate()
}

// ApplyScientistPatch copies the allow-listed keys of fields onto s. Keys
// outside the allow-list and values that are not strings are rejected
// before anything is written to s.
func ApplyScientistPatch(s *Scientist, fields map[string]any) error {
	updates := make(map[string]string, len(fields))

	for key, value := range fields {
		switch key {
		case "name", "field_of_study":
		default:
			return &ValidationError{Entity: "scientist", Field: key, Reason: "is not a patchable field"}
		}

		switch v := value.(type) {
		case string:
			updates[key] = v
		case nil:
			updates[key] = ""
		default:
			return &ValidationError{Entity: "scientist", Field: key, Reason: "must be a string"}
		}
	}

	if name, ok := updates["name"]; ok {
		s.Name = name
	}

	if fieldOfStudy, ok := updates["field_of_study"]; ok {
		s.FieldOfStudy = fieldOfStudy
	}

	return s.Validate()
}
