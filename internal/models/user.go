package models

import "time"

// PermissionsDefault is the all-denied capability string assigned to new users.
const PermissionsDefault = "---------"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Permissions  string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Web          string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	OrganizedProjects  []Project           `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ProjectMemberships []ProjectMembership `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Profiles           []UserProfile       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
