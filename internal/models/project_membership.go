package models

import "time"

// ProjectMembership links a participant to a project. The composite unique
// index is the backstop against two concurrent adds of the same participant.
type ProjectMembership struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_project"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_user_project"`
	CreatedAt time.Time

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
