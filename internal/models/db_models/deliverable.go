package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deliverable is a checklist item that cannot exist without its parent Deal.
// Its effective owner is the parent deal's owner. CreatedAt is nanoseconds so
// checklist ordering stays stable even for rows seeded in one batch.
type Deliverable struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DealID    uuid.UUID `gorm:"type:uuid;index" json:"deal_id"`
	Label     string    `json:"label"`
	ProofURL  *string   `json:"proof_url"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt int64     `gorm:"autoCreateTime:nano" json:"created_at"`
}

func (d *Deliverable) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt == 0 {
		d.CreatedAt = time.Now().UnixNano()
	}
	return nil
}
