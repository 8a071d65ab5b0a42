package db_models

import (
	"time"

	"github.com/google/uuid"
)

type DealStatus string

const (
	StatusLead    DealStatus = "lead"
	StatusWorking DealStatus = "working"
	StatusPaid    DealStatus = "paid"
)

// ValidDealStatus reports whether s is one of the three pipeline stages.
// Transitions between stages are free assignments; there is no terminal
// state and no forward-only rule.
func ValidDealStatus(s DealStatus) bool {
	switch s {
	case StatusLead, StatusWorking, StatusPaid:
		return true
	}
	return false
}

type Deal struct {
	BaseModel
	UserID       uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	BrandName    string     `json:"brand_name"`
	ContactEmail string     `json:"contact_email"`
	Price        float64    `json:"price"`
	Status       DealStatus `gorm:"default:lead" json:"status"`
	Platform     string     `gorm:"default:Instagram" json:"platform"`
	DueDate      *time.Time `gorm:"type:date" json:"due_date"`

	Deliverables []Deliverable `gorm:"foreignKey:DealID" json:"deliverables,omitempty"`
}
