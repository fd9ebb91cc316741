package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to new expenses whose description
// matches a glob pattern, e.g. "REWE*" for a supermarket.
type MatchRule struct {
	DefaultModel
	UserID     uuid.UUID
	User       User `json:"-"`
	CategoryID uuid.UUID
	Category   Category `json:"-"`
	Priority   uint
	Match      string
}

func (r MatchRule) Self() string {
	return "Match Rule"
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	return nil
}

// CategoryForDescription returns the category of the first match rule
// matching the description.
//
// Rules are checked in priority order, lower numbers first. Rules with
// the same priority are checked in creation order. The return value is
// nil when no rule matches.
func CategoryForDescription(userID uuid.UUID, description string) (*uuid.UUID, error) {
	var rules []MatchRule
	err := DB.
		Where(&MatchRule{UserID: userID}).
		Order("priority ASC").
		Order("created_at ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, description) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
