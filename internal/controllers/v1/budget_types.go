package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

type BudgetEditable struct {
	UserID         uuid.UUID           `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                                                       // ID of the user the budget belongs to
	CategoryID     *uuid.UUID          `json:"categoryId" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`                                                   // ID of the category the budget tracks. null for an overall budget
	Amount         decimal.Decimal     `json:"amount" example:"1000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`          // Spending limit for the date range
	Period         models.BudgetPeriod `json:"period" example:"MONTHLY" default:"MONTHLY"`                                                                  // MONTHLY or YEARLY
	StartDate      time.Time           `json:"startDate" example:"2024-01-01T00:00:00Z"`                                                                    // First day of the budget
	EndDate        time.Time           `json:"endDate" example:"2024-01-31T00:00:00Z"`                                                                      // Last day of the budget
	AlertThreshold decimal.Decimal     `json:"alertThreshold" example:"80" default:"80" minimum:"0" maximum:"100"`                                          // Percentage of the amount at which an alert is raised
}

// model returns the database resource for the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		UserID:         editable.UserID,
		CategoryID:     editable.CategoryID,
		Amount:         editable.Amount,
		Period:         editable.Period,
		StartDate:      editable.StartDate,
		EndDate:        editable.EndDate,
		AlertThreshold: editable.AlertThreshold,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`     // The budget itself
	Alerts   string `json:"alerts" example:"https://example.com/api/v1/budgets/alerts?user=..."`                        // Alert check for all budgets of the user
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?user=..."`                            // Expenses of the budget's user
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			UserID:         model.UserID,
			CategoryID:     model.CategoryID,
			Amount:         model.Amount,
			Period:         model.Period,
			StartDate:      model.StartDate,
			EndDate:        model.EndDate,
			AlertThreshold: model.AlertThreshold,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Alerts:   fmt.Sprintf("%s/v1/budgets/alerts?user=%s", url, model.UserID),
			Expenses: fmt.Sprintf("%s/v1/expenses?user=%s", url, model.UserID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
}

type BudgetQueryFilter struct {
	UserID     string `form:"user"`                       // By user ID
	CategoryID string `form:"category"`                   // By category ID
	Period     string `form:"period"`                     // By period type
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() (models.Budget, error) {
	userID, err := httputil.UUIDFromString(f.UserID)
	if err != nil {
		return models.Budget{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.Budget{}, err
	}

	var categoryPointer *uuid.UUID
	if categoryID != uuid.Nil {
		categoryPointer = &categoryID
	}

	return models.Budget{
		UserID:     userID,
		CategoryID: categoryPointer,
		Period:     models.BudgetPeriod(f.Period),
	}, nil
}

type OverviewResponse struct {
	Data  *models.BudgetOverview `json:"data"`  // The budget overview
	Error *string                `json:"error"` // The error, if any occurred
}

type AnalyticsResponse struct {
	Data  *models.BudgetAnalytics `json:"data"`  // The budget analytics
	Error *string                 `json:"error"` // The error, if any occurred
}

type AlertListResponse struct {
	Data  []models.BudgetAlert `json:"data"`  // List of budget alerts
	Error *string              `json:"error"` // The error, if any occurred
}

type AnalyticsQuery struct {
	User   string    `form:"user"`                                       // ID of the user to compute analytics for
	Period string    `form:"period"`                                     // MONTHLY or YEARLY
	From   time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"` // First day of the date window
	To     time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`   // Last day of the date window
}
