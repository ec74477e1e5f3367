package models

import "gorm.io/gorm"

// TicketStatus is the closed set of maintenance ticket states. No transition
// order is enforced; any status may follow any other.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// Valid reports whether s is one of the known statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// Ticket is a maintenance request owned by the user who filed it.
type Ticket struct {
	gorm.Model
	UserID      uint         `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TicketStatus `gorm:"default:'open'" json:"status"`
}
