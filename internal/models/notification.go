package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType describes what a notification is about.
type NotificationType string

const (
	NotificationTypeGeneric     NotificationType = "GENERIC"
	NotificationTypeBudgetAlert NotificationType = "BUDGET_ALERT"
)

// Notification is a message for a user, e.g. a budget alert.
type Notification struct {
	DefaultModel
	UserID   uuid.UUID
	User     User             `json:"-"`
	Type     NotificationType `gorm:"default:GENERIC"`
	Message  string
	Read     bool
	BudgetID *uuid.UUID // Set for budget alert notifications
}

func (n Notification) Self() string {
	return "Notification"
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.Message = strings.TrimSpace(n.Message)

	if n.BudgetID != nil && *n.BudgetID == uuid.Nil {
		n.BudgetID = nil
	}

	return nil
}

// CreateBudgetAlertNotifications runs the alert check for the user and
// persists one notification per alert.
func CreateBudgetAlertNotifications(userID uuid.UUID) ([]Notification, error) {
	alerts, err := CheckBudgetAlerts(userID)
	if err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, len(alerts))
	for _, alert := range alerts {
		id := alert.BudgetID
		notification := Notification{
			UserID:   userID,
			Type:     NotificationTypeBudgetAlert,
			BudgetID: &id,
			Message: fmt.Sprintf(
				"You have used %s%% of your budget of %s (alert threshold: %s%%)",
				alert.UsagePercentage.Round(2), alert.BudgetAmount, alert.AlertThreshold,
			),
		}

		err := DB.Create(&notification).Error
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}
