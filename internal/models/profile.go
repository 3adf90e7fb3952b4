package models

import "time"

// Profile is a named skill tag. Users link to it through UserProfile (skills
// they have), projects through ProjectRequestedProfile (skills they look for).
type Profile struct {
	ID          uint   `gorm:"primaryKey"`
	ProfileName string `gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time
}

type UserProfile struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_profile"`
	ProfileID uint `gorm:"not null;uniqueIndex:idx_user_profile"`
	CreatedAt time.Time

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

type ProjectRequestedProfile struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_project_profile"`
	ProfileID uint `gorm:"not null;uniqueIndex:idx_project_profile"`
	CreatedAt time.Time

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
