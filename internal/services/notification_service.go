package services

import (
	"fmt"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/notify"
)

// NotificationService exposes the transient banners
type NotificationService interface {
	ListNotifications() []notify.Toast
	DismissNotification(id string) error
}

type notificationService struct {
	center *notify.Center
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(center *notify.Center) NotificationService {
	return &notificationService{center: center}
}

func (s *notificationService) ListNotifications() []notify.Toast {
	return s.center.Active()
}

func (s *notificationService) DismissNotification(id string) error {
	if !s.center.Dismiss(id) {
		return fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}
	return nil
}
