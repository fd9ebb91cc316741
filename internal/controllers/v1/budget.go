package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for Budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}

	// Aggregations over all budgets of a user
	{
		r.OPTIONS("/overview", OptionsBudgetOverview)
		r.GET("/overview", GetBudgetOverview)
		r.OPTIONS("/analytics", OptionsBudgetAnalytics)
		r.GET("/analytics", GetBudgetAnalytics)
		r.OPTIONS("/alerts", OptionsBudgetAlerts)
		r.GET("/alerts", GetBudgetAlerts)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Budget{})
}

// @Summary		Create budgets
// @Description	Creates new budgets
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	var budgets []BudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &budgets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range budgets {
		// Verify that the referenced user exists
		err := models.DB.First(&models.User{}, editable.UserID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Verify that the referenced category exists
		if editable.CategoryID != nil {
			err := models.DB.First(&models.Category{}, editable.CategoryID).Error
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		budget := editable.model()

		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			user		query	string	false	"Filter by user ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			period		query	string	false	"Filter by period type"
// @Param			offset		query	uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	var budgets []models.Budget

	// Budgets are ordered by their start date, newest first
	q := models.DB.
		Order("start_date DESC").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err = q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Budget, 0)
	for _, budget := range budgets {
		apiResources = append(apiResources, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	deleteResource[models.Budget](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/overview [options]
func OptionsBudgetOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Budget overview
// @Description	Returns the totals for all budgets of a user against their all-time approved spending
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	OverviewResponse
// @Failure		400		{object}	OverviewResponse
// @Failure		500		{object}	OverviewResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/budgets/overview [get]
func GetBudgetOverview(c *gin.Context) {
	userID, err := userIDFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{
			Error: &s,
		})
		return
	}

	overview, err := models.GetBudgetOverview(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{Data: &overview})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/analytics [options]
func OptionsBudgetAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Budget analytics
// @Description	Returns utilization, category breakdown and spending trend for a user within a date window
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	AnalyticsResponse
// @Failure		400		{object}	AnalyticsResponse
// @Failure		500		{object}	AnalyticsResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			period	query		string	true	"Budget period type, MONTHLY or YEARLY"
// @Param			from	query		string	true	"First day of the date window, YYYY-MM-DD"
// @Param			to		query		string	true	"Last day of the date window, YYYY-MM-DD"
// @Router			/v1/budgets/analytics [get]
func GetBudgetAnalytics(c *gin.Context) {
	var query AnalyticsQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AnalyticsResponse{
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
		c.JSON(status(err), AnalyticsResponse{
			Error: &s,
		})
		return
	}

	period := models.BudgetPeriod(query.Period)
	if period != models.BudgetPeriodMonthly && period != models.BudgetPeriodYearly {
		s := errPeriodInvalid.Error()
		c.JSON(http.StatusBadRequest, AnalyticsResponse{
			Error: &s,
		})
		return
	}

	if query.From.IsZero() || query.To.IsZero() {
		s := errDateRangeNotSet.Error()
		c.JSON(http.StatusBadRequest, AnalyticsResponse{
			Error: &s,
		})
		return
	}

	analytics, err := models.GetBudgetAnalytics(models.AnalyticsParams{
		UserID:    userID,
		Period:    period,
		StartDate: query.From,
		EndDate:   query.To,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalyticsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AnalyticsResponse{Data: &analytics})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/alerts [options]
func OptionsBudgetAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Budget alerts
// @Description	Returns one alert per budget of the user whose usage has reached its alert threshold
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	AlertListResponse
// @Failure		400		{object}	AlertListResponse
// @Failure		500		{object}	AlertListResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/budgets/alerts [get]
func GetBudgetAlerts(c *gin.Context) {
	userID, err := userIDFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &s,
		})
		return
	}

	alerts, err := models.CheckBudgetAlerts(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AlertListResponse{Data: alerts})
}
