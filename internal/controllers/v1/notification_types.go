package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

type NotificationEditable struct {
	UserID   uuid.UUID               `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`      // ID of the user the notification is for
	Type     models.NotificationType `json:"type" example:"GENERIC" default:"GENERIC"`                   // GENERIC or BUDGET_ALERT
	Message  string                  `json:"message" example:"You have used 85% of your budget of 1000"` // Text of the notification
	Read     bool                    `json:"read" example:"false" default:"false"`                       // Has the user read the notification?
	BudgetID *uuid.UUID              `json:"budgetId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // ID of the budget, set for budget alerts
}

// model returns the database resource for the editable fields
func (editable NotificationEditable) model() models.Notification {
	return models.Notification{
		UserID:   editable.UserID,
		Type:     editable.Type,
		Message:  editable.Message,
		Read:     editable.Read,
		BudgetID: editable.BudgetID,
	}
}

type NotificationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/notifications/9b364cee-c2bc-48e6-bb29-caee55bf1721"` // The notification itself
	User string `json:"user" example:"https://example.com/api/v1/users/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`         // The user the notification is for
}

// Notification is the API v1 representation of a Notification.
type Notification struct {
	models.DefaultModel
	NotificationEditable
	Links NotificationLinks `json:"links"`
}

func newNotification(c *gin.Context, model models.Notification) Notification {
	url := c.GetString(string(models.DBContextURL))

	return Notification{
		DefaultModel: model.DefaultModel,
		NotificationEditable: NotificationEditable{
			UserID:   model.UserID,
			Type:     model.Type,
			Message:  model.Message,
			Read:     model.Read,
			BudgetID: model.BudgetID,
		},
		Links: NotificationLinks{
			Self: fmt.Sprintf("%s/v1/notifications/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type NotificationListResponse struct {
	Data       []Notification `json:"data"`                                                          // List of notifications
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type NotificationCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []NotificationResponse `json:"data"`                                                          // List of created notifications
}

func (n *NotificationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	n.Data = append(n.Data, NotificationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type NotificationResponse struct {
	Data  *Notification `json:"data"`                                                          // Data for the notification
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this notification
}

type NotificationQueryFilter struct {
	UserID string `form:"user"`                       // By user ID
	Type   string `form:"type"`                       // By notification type
	Read   bool   `form:"read"`                       // Has the user read the notification?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Notification returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Notifications to return. Defaults to 50.
}

func (f NotificationQueryFilter) model() (models.Notification, error) {
	userID, err := httputil.UUIDFromString(f.UserID)
	if err != nil {
		return models.Notification{}, err
	}

	return models.Notification{
		UserID: userID,
		Type:   models.NotificationType(f.Type),
		Read:   f.Read,
	}, nil
}
