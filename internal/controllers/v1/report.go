package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/expenses", OptionsExpenseReport)
	r.GET("/expenses", GetExpenseReport)
}

type ReportQuery struct {
	User string    `form:"user"`                                       // ID of the user to report on
	From time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"` // First day of the date window
	To   time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`   // Last day of the date window
}

type ReportResponse struct {
	Data  []models.ReportRow `json:"data"`  // The report rows
	Error *string            `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/expenses [options]
func OptionsExpenseReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Expense report
// @Description	Aggregates the user's expenses per category and month within a date window
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			from	query		string	true	"First day of the date window, YYYY-MM-DD"
// @Param			to		query		string	true	"Last day of the date window, YYYY-MM-DD"
// @Router			/v1/reports/expenses [get]
func GetExpenseReport(c *gin.Context) {
	var query ReportQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	userID, err := httputil.UUIDFromString(query.User)
	if err == nil && userID == uuid.Nil {
		err = errUserParameter
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	if query.From.IsZero() || query.To.IsZero() {
		s := errDateRangeNotSet.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	report, err := models.GetExpenseReport(userID, query.From, query.To)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: report})
}
