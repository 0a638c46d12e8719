package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Medication struct {
	ID         string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(200);not null" json:"name"`
	Dosage     string     `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency  string     `gorm:"type:varchar(100);not null" json:"frequency"`
	TimeToTake string     `gorm:"type:varchar(100);not null" json:"time_to_take"`
	Notes      string     `gorm:"type:text" json:"notes"`
	LastTaken  *time.Time `json:"last_taken"`
	ImageKey   string     `gorm:"type:varchar(200)" json:"image_key,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate выдаёт UUID, если идентификатор не задан
func (m *Medication) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
