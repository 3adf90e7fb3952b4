package models

import "time"

type Project struct {
	ID          uint   `gorm:"primaryKey"`
	OrganizerID uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Summary     string `gorm:"not null"`
	Description string `gorm:"not null"`
	Needs       string `gorm:"not null"`
	URL         string
	ImgBg       string
	Img1        string
	Img2        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Organizer          User                      `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ProjectMemberships []ProjectMembership       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	RequestedProfiles  []ProjectRequestedProfile `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
