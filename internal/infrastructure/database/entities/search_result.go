package entities

import "time"

// SearchResult represents a curated catalog entry matched by substring search.
type SearchResult struct {
	ID          string    `gorm:"type:varchar(40);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	URL         string    `gorm:"type:varchar(512);not null"`
	Category    string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (SearchResult) TableName() string {
	return "search_results"
}
