package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterNotificationRoutes registers the routes for Notifications with
// the RouterGroup that is passed.
func RegisterNotificationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsNotificationList)
		r.GET("", GetNotifications)
		r.POST("", CreateNotifications)
	}

	// Alert check
	{
		r.OPTIONS("/check-alerts", OptionsCheckAlerts)
		r.POST("/check-alerts", CheckAlerts)
	}

	// Notification with ID
	{
		r.OPTIONS("/:id", OptionsNotificationDetail)
		r.GET("/:id", GetNotification)
		r.PATCH("/:id", UpdateNotification)
		r.DELETE("/:id", DeleteNotification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotificationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [options]
func OptionsNotificationDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Notification{})
}

// @Summary		Create notifications
// @Description	Creates new notifications
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		201				{object}	NotificationCreateResponse
// @Failure		400				{object}	NotificationCreateResponse
// @Failure		404				{object}	NotificationCreateResponse
// @Failure		500				{object}	NotificationCreateResponse
// @Param			notifications	body		[]NotificationEditable	true	"Notifications"
// @Router			/v1/notifications [post]
func CreateNotifications(c *gin.Context) {
	var notifications []NotificationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &notifications)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := NotificationCreateResponse{}

	for _, editable := range notifications {
		// Verify that the referenced user exists
		err := models.DB.First(&models.User{}, editable.UserID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Verify that the referenced budget exists
		if editable.BudgetID != nil {
			err := models.DB.First(&models.Budget{}, editable.BudgetID).Error
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		notification := editable.model()

		err = models.DB.Create(&notification).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newNotification(c, notification)
		r.Data = append(r.Data, NotificationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List notifications
// @Description	Returns a list of notifications
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationListResponse
// @Failure		400	{object}	NotificationListResponse
// @Failure		500	{object}	NotificationListResponse
// @Router			/v1/notifications [get]
// @Param			user	query	string	false	"Filter by user ID"
// @Param			type	query	string	false	"Filter by notification type"
// @Param			read	query	bool	false	"Filter by read state"
// @Param			offset	query	uint	false	"The offset of the first Notification returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Notifications to return. Defaults to 50."
func GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	// Notifications are ordered newest first
	q := models.DB.
		Order("created_at DESC").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Notifications and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var notifications []models.Notification
	err = q.Find(&notifications).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Notification, 0)
	for _, notification := range notifications {
		apiResources = append(apiResources, newNotification(c, notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get notification
// @Description	Returns a specific notification
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationResponse
// @Failure		400	{object}	NotificationResponse
// @Failure		404	{object}	NotificationResponse
// @Failure		500	{object}	NotificationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [get]
func GetNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	var notification models.Notification
	err = models.DB.First(&notification, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &apiResource})
}

// @Summary		Update notification
// @Description	Update an existing notification, e.g. to mark it as read. Only values to be updated need to be specified.
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	NotificationResponse
// @Failure		400				{object}	NotificationResponse
// @Failure		404				{object}	NotificationResponse
// @Failure		500				{object}	NotificationResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/v1/notifications/{id} [patch]
func UpdateNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	var notification models.Notification
	err = models.DB.First(&notification, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, NotificationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	var data NotificationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&notification).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	apiResource := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &apiResource})
}

// @Summary		Delete notification
// @Description	Deletes a notification
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [delete]
func DeleteNotification(c *gin.Context) {
	deleteResource[models.Notification](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications/check-alerts [options]
func OptionsCheckAlerts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Check budget alerts
// @Description	Runs the alert check for the user and persists one notification per budget over its alert threshold
// @Tags			Notifications
// @Produce		json
// @Success		201		{object}	NotificationListResponse
// @Failure		400		{object}	NotificationListResponse
// @Failure		500		{object}	NotificationListResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/notifications/check-alerts [post]
func CheckAlerts(c *gin.Context) {
	userID, err := userIDFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	notifications, err := models.CreateBudgetAlertNotifications(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	apiResources := make([]Notification, 0)
	for _, notification := range notifications {
		apiResources = append(apiResources, newNotification(c, notification))
	}

	c.JSON(http.StatusCreated, NotificationListResponse{Data: apiResources})
}
