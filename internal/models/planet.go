package models

type Planet struct {
	BaseModel

	Name              string
	DistanceFromEarth int
	NearestStar       string

	// Relationships
	Missions []Mission `gorm:"foreignKey:PlanetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
