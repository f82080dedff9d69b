package entities

import "time"

// Resource represents a read-only catalog entry listed on the resources page.
type Resource struct {
	ID          string    `gorm:"type:varchar(40);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	URL         string    `gorm:"type:varchar(512);not null"`
	Category    string    `gorm:"type:varchar(64);index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (Resource) TableName() string {
	return "resources"
}
