package models

import "gorm.io/gorm"

// Student links a User account to a dorm bed. BedID is nil while the
// student is checked out. The unique index on BedID is what guarantees
// one student per bed even under concurrent check-ins.
type Student struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex" json:"userId"`
	StudentNo string `json:"studentNo"`
	BedID     *uint  `gorm:"uniqueIndex" json:"bedId"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bed  *Bed  `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}
