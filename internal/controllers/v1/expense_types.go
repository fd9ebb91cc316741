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

type ExpenseEditable struct {
	UserID      uuid.UUID            `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                                              // ID of the user the expense belongs to
	CategoryID  *uuid.UUID           `json:"categoryId" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`                                          // ID of the category. null triggers match rule categorization
	Amount      decimal.Decimal      `json:"amount" example:"14.5" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of the expense
	Status      models.ExpenseStatus `json:"status" example:"APPROVED" default:"PENDING"`                                                        // PENDING, APPROVED or REJECTED
	Description string               `json:"description" example:"Groceries for the week"`                                                       // Description of the expense
	Date        time.Time            `json:"date" example:"2024-01-15T00:00:00Z"`                                                                // Day the expense occurred. Defaults to the current day
}

// model returns the database resource for the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		UserID:      editable.UserID,
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Status:      editable.Status,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"` // The expense itself
	User string `json:"user" example:"https://example.com/api/v1/users/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // The user the expense belongs to
}

// Expense is the API v1 representation of an Expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			UserID:      model.UserID,
			CategoryID:  model.CategoryID,
			Amount:      model.Amount,
			Status:      model.Status,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created Expenses
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this expense
}

type ExpenseQueryFilter struct {
	UserID      string    `form:"user"`                                                           // By user ID
	CategoryID  string    `form:"category"`                                                       // By category ID
	Status      string    `form:"status"`                                                         // By approval status
	Description string    `form:"description" filterField:"false"`                                // Fuzzy filter for the description
	From        time.Time `form:"from" filterField:"false" time_format:"2006-01-02" time_utc:"1"` // Only expenses on or after this day
	To          time.Time `form:"to" filterField:"false" time_format:"2006-01-02" time_utc:"1"`   // Only expenses on or before this day
	Offset      uint      `form:"offset" filterField:"false"`                                     // The offset of the first Expense returned. Defaults to 0.
	Limit       int       `form:"limit" filterField:"false"`                                      // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	userID, err := httputil.UUIDFromString(f.UserID)
	if err != nil {
		return models.Expense{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.Expense{}, err
	}

	var categoryPointer *uuid.UUID
	if categoryID != uuid.Nil {
		categoryPointer = &categoryID
	}

	return models.Expense{
		UserID:     userID,
		CategoryID: categoryPointer,
		Status:     models.ExpenseStatus(f.Status),
	}, nil
}
