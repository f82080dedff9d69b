package entities

import "time"

// LearningPath represents a guided onboarding track for one skill.
type LearningPath struct {
	ID          string         `gorm:"type:varchar(40);primaryKey"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Skill       string         `gorm:"type:varchar(64);not null;index"`
	Icon        string         `gorm:"type:varchar(16)"`
	Difficulty  string         `gorm:"type:varchar(32)"`
	Duration    string         `gorm:"type:varchar(32)"`
	Steps       []LearningStep `gorm:"foreignKey:PathID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// LearningStep is one ordered step within a learning path.
// "order" is a reserved word in Postgres, hence the step_order column.
type LearningStep struct {
	ID             string   `gorm:"type:varchar(40);primaryKey"`
	PathID         string   `gorm:"type:varchar(40);not null;index"`
	Title          string   `gorm:"type:varchar(255);not null"`
	Description    string   `gorm:"type:text"`
	StepOrder      int      `gorm:"column:step_order;not null"`
	Resources      []string `gorm:"serializer:json;type:text"`
	EstimatedHours int      `gorm:"not null"`
}

func (LearningStep) TableName() string {
	return "learning_steps"
}
