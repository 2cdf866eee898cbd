package store

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement:false"`
	Code       string `gorm:"size:20;uniqueIndex;not null"`
	Name       string `gorm:"size:200;not null"`
	Credits    uint64 `gorm:"not null"`
	Department string `gorm:"size:100"`

	Sections []Section `gorm:"foreignKey:CourseID"`
}

type Section struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement:false"`
	CourseID  uint64 `gorm:"not null;index"`
	Number    string `gorm:"size:10;not null"`
	Capacity  uint64
	Enrolled  uint64
	Professor string `gorm:"size:200"`
	Active    bool   `gorm:"not null"` // No default so that false survives inserts

	Course   Course    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Sessions []Session `gorm:"foreignKey:SectionID"`
}

type Session struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement:false"`
	SectionID uint64 `gorm:"not null;index"`
	Position  int    `gorm:"not null"` // Order of the session inside its section
	Type      string `gorm:"size:50"`
	Day       string `gorm:"size:10;not null"` // Canonical english name
	StartTime string `gorm:"size:5;not null"`  // HH:MM
	EndTime   string `gorm:"size:5;not null"`  // HH:MM
	Location  string `gorm:"size:100"`
	Building  string `gorm:"size:100"`
	Room      string `gorm:"size:50"`
	Modality  string `gorm:"size:50"`
	Frequency string `gorm:"size:50"`
}

type Schedule struct {
	ID               uint64 `gorm:"primaryKey"`
	UserID           uint64 `gorm:"not null;index"`
	Name             string `gorm:"size:100;not null"`
	Description      string `gorm:"size:500"`
	ShareToken       string `gorm:"size:36;uniqueIndex;not null"`
	CombinationToken string `gorm:"size:36"`
	CombinationKey   string `gorm:"not null"`
	TotalCredits     uint64
	IsFavorite       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	Sessions []ScheduleSession `gorm:"foreignKey:ScheduleID"`
}

type ScheduleSession struct {
	ID         uint64 `gorm:"primaryKey"`
	ScheduleID uint64 `gorm:"not null;index"`
	SectionID  uint64 `gorm:"not null"`
	SessionID  uint64 `gorm:"not null"`
	CourseCode string `gorm:"size:20"`
}
