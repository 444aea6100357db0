package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ThemeRecord caches one AI-sourced rug theme per style description
type ThemeRecord struct {
	ID          string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Key         string         `gorm:"uniqueIndex;not null" json:"key"` // normalised style description
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Border      string         `gorm:"not null" json:"border"`
	InnerBorder string         `gorm:"not null" json:"inner_border"`
	Field       string         `gorm:"not null" json:"field"`
	Medallion   string         `gorm:"not null" json:"medallion"`
	Accent      string         `gorm:"not null" json:"accent"`
	Provider    string         `json:"provider"`
	Model       string         `json:"model"`
	HitCount    int            `gorm:"default:0;not null" json:"hit_count"`
}

// TableName pins the table name
func (ThemeRecord) TableName() string {
	return "rug_themes"
}

// BeforeCreate assigns a UUID primary key
func (r *ThemeRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
