package models

import "gorm.io/gorm"

// Bed holds at most one student at a time; the inverse side of the
// relationship is enforced by the unique index on Student.BedID.
type Bed struct {
	gorm.Model
	RoomID uint   `json:"roomId"`
	Label  string `json:"label"`

	Room    *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Student *Student `gorm:"foreignKey:BedID" json:"student,omitempty"`
}
