package service

import (
	"context"
	"fmt"

	repository "github.com/ds124wfegd/contactremind/internal/database/postgres"
	"github.com/ds124wfegd/contactremind/internal/entity"
)

// recentNotificationsLimit matches what the notifications UI shows.
const recentNotificationsLimit = 50

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetRecent(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.GetRecentByUserID(ctx, userID, recentNotificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
