package models

import "gorm.io/gorm"

type Room struct {
	gorm.Model
	BuildingID uint   `json:"buildingId"`
	Floor      int    `json:"floor"`
	Number     string `json:"number"`

	Building *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Beds     []Bed     `gorm:"foreignKey:RoomID" json:"beds"`
}
