package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team groups users that share their expense tracking.
type Team struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Note string
}

func (t Team) Self() string {
	return "Team"
}

func (t *Team) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// TeamMembership connects a user to a team.
type TeamMembership struct {
	DefaultModel
	TeamID uuid.UUID `gorm:"uniqueIndex:team_membership_team_user"`
	Team   Team      `json:"-"`
	UserID uuid.UUID `gorm:"uniqueIndex:team_membership_team_user"`
	User   User      `json:"-"`
	Role   string    `gorm:"default:member"`
}

func (m TeamMembership) Self() string {
	return "Team Membership"
}
