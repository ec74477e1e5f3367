package models

import "gorm.io/gorm"

// Building is the top level of the housing hierarchy; it owns rooms,
// which in turn own beds.
type Building struct {
	gorm.Model
	Name  string `json:"name"`
	Rooms []Room `gorm:"foreignKey:BuildingID" json:"rooms"`
}
