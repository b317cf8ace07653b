package model

import (
	"time"

	"gorm.io/gorm"
)

// Track is a saved route (used for both PostgreSQL and memory storage)
type Track struct {
	ID             string  `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"size:255;not null"`
	Polyline       string  `json:"polyline" gorm:"type:text;not null"`
	Precision      int     `json:"precision" gorm:"not null;default:5"`
	PointCount     int     `json:"point_count" gorm:"not null"`
	DistanceMeters float64 `json:"distance_meters" gorm:"not null"`

	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

// TableName overrides the table name
func (Track) TableName() string {
	return "tracks"
}
