package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`             // URL of Budget collection endpoint
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`       // URL of Category collection endpoint
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`         // URL of the dashboard endpoint
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`           // URL of Expense collection endpoint
	MatchRules    string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`      // URL of Match Rule collection endpoint
	Notifications string `json:"notifications" example:"https://example.com/api/v1/notifications"` // URL of Notification collection endpoint
	Reports       string `json:"reports" example:"https://example.com/api/v1/reports/expenses"`    // URL of the expense report endpoint
	Teams         string `json:"teams" example:"https://example.com/api/v1/teams"`                 // URL of Team collection endpoint
	Users         string `json:"users" example:"https://example.com/api/v1/users"`                 // URL of User collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:       url + "/v1/budgets",
			Categories:    url + "/v1/categories",
			Dashboard:     url + "/v1/dashboard",
			Expenses:      url + "/v1/expenses",
			MatchRules:    url + "/v1/match-rules",
			Notifications: url + "/v1/notifications",
			Reports:       url + "/v1/reports/expenses",
			Teams:         url + "/v1/teams",
			Users:         url + "/v1/users",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// Cleanup permanently deletes all resources
//
//	@Summary		Delete everything
//	@Description	Permanently deletes all resources
//	@Tags			v1
//	@Success		204
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// The order is important here since there are foreign keys to consider!
	resources := []any{
		models.Notification{},
		models.MatchRule{},
		models.Expense{},
		models.Budget{},
		models.Category{},
		models.TeamMembership{},
		models.Team{},
		models.User{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
