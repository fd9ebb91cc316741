package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/models"
)

type UserEditable struct {
	Name   string `json:"name" example:"Morre"`                   // Name of the user
	Email  string `json:"email" example:"morre@example.com"`      // Email address, unique across all users
	Active bool   `json:"active" example:"true" default:"true"`   // Inactive users are kept for bookkeeping only
	Note   string `json:"note" example:"Likes snacks a bit much"` // Notes about the user
}

// model returns the database resource for the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Name:   editable.Name,
		Email:  editable.Email,
		Active: editable.Active,
		Note:   editable.Note,
	}
}

type UserLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/users/d3c3ba1c-8b7f-4c5d-9bdb-4e68e2f6ba0b"` // The user itself
	Budgets   string `json:"budgets" example:"https://example.com/api/v1/budgets?user=..."`                        // Budgets of the user
	Expenses  string `json:"expenses" example:"https://example.com/api/v1/expenses?user=..."`                      // Expenses of the user
	Dashboard string `json:"dashboard" example:"https://example.com/api/v1/dashboard?user=..."`                    // Dashboard statistics for the user
}

// User is the API v1 representation of a User.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:   model.Name,
			Email:  model.Email,
			Active: model.Active,
			Note:   model.Note,
		},
		Links: UserLinks{
			Self:      fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Budgets:   fmt.Sprintf("%s/v1/budgets?user=%s", url, model.ID),
			Expenses:  fmt.Sprintf("%s/v1/expenses?user=%s", url, model.ID),
			Dashboard: fmt.Sprintf("%s/v1/dashboard?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserResponse `json:"data"`                                                          // List of created Users
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this user
}

type UserQueryFilter struct {
	Email  string `form:"email"`                      // By email address
	Active bool   `form:"active"`                     // Is the user active?
	Name   string `form:"name" filterField:"false"`   // By name. Fuzzy filtered
	Note   string `form:"note" filterField:"false"`   // By note. Fuzzy filtered
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		Email:  f.Email,
		Active: f.Active,
	}
}
