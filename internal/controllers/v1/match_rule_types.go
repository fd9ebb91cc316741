package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

type MatchRuleEditable struct {
	UserID     uuid.UUID `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user the match rule belongs to
	CategoryID uuid.UUID `json:"categoryId" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // ID of the category to assign to matching expenses
	Priority   uint      `json:"priority" example:"3"`                                      // Order in which rules are checked, lower numbers first
	Match      string    `json:"match" example:"REWE*"`                                     // Glob pattern matched against expense descriptions
}

// model returns the database resource for the editable fields
func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		UserID:     editable.UserID,
		CategoryID: editable.CategoryID,
		Priority:   editable.Priority,
		Match:      editable.Match,
	}
}

type MatchRuleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/..."`                              // The category this rule assigns
}

// MatchRule is the API v1 representation of a MatchRule.
type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			UserID:     model.UserID,
			CategoryID: model.CategoryID,
			Priority:   model.Priority,
			Match:      model.Match,
		},
		Links: MatchRuleLinks{
			Self:     fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of match rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created match rules
}

func (m *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`                                                          // Data for the match rule
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this match rule
}

type MatchRuleQueryFilter struct {
	UserID     string `form:"user"`                       // By user ID
	CategoryID string `form:"category"`                   // By category ID
	Match      string `form:"match" filterField:"false"`  // By match pattern. Fuzzy filtered
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first Match Rule returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of Match Rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() (models.MatchRule, error) {
	userID, err := httputil.UUIDFromString(f.UserID)
	if err != nil {
		return models.MatchRule{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.MatchRule{}, err
	}

	return models.MatchRule{
		UserID:     userID,
		CategoryID: categoryID,
	}, nil
}
