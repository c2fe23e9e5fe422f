package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/ds124wfegd/contactremind/internal/database/postgres"
	"github.com/ds124wfegd/contactremind/internal/entity"

	"github.com/google/uuid"
)

// CreateReminderRequest represents the data the reminder form submits
type CreateReminderRequest struct {
	UserID                string  `json:"user_id" binding:"required"`
	ContactID             *string `json:"contact_id"`
	Date                  string  `json:"date" binding:"required"`
	Time                  *string `json:"time"`
	Purpose               string  `json:"purpose" binding:"required,max=1000"`
	IsRecurring           bool    `json:"is_recurring"`
	Frequency             *string `json:"frequency"`
	SendEmailNotification bool    `json:"send_email_notification"`
}

type reminderService struct {
	reminderRepo repository.ReminderRepository
}

// NewReminderService creates a new instance of ReminderService
func NewReminderService(reminderRepo repository.ReminderRepository) ReminderService {
	return &reminderService{reminderRepo: reminderRepo}
}

func (s *reminderService) CreateReminder(ctx context.Context, req *CreateReminderRequest) (*entity.Reminder, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, entity.ErrInvalidDateFormat
	}
	if req.Time != nil && *req.Time != "" {
		if _, err := time.Parse(timeLayout, *req.Time); err != nil {
			return nil, fmt.Errorf("%w: time must be in HH:MM format", entity.ErrInvalidInput)
		}
	}

	// frequency is required iff the reminder recurs
	if req.IsRecurring {
		if req.Frequency == nil || *req.Frequency == "" {
			return nil, entity.ErrFrequencyRequired
		}
		switch entity.ReminderFrequency(*req.Frequency) {
		case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly:
		default:
			return nil, entity.ErrInvalidFrequency
		}
	} else {
		req.Frequency = nil
	}

	reminder := &entity.Reminder{
		ID:                    uuid.New().String(),
		UserID:                req.UserID,
		ContactID:             req.ContactID,
		Date:                  req.Date,
		Time:                  req.Time,
		Purpose:               req.Purpose,
		IsRecurring:           req.IsRecurring,
		Frequency:             req.Frequency,
		SendEmailNotification: req.SendEmailNotification,
		IsCompleted:           false,
		CreatedAt:             time.Now(),
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder, nil
}

func (s *reminderService) GetUserReminders(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	reminders, err := s.reminderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reminders: %w", err)
	}

	return reminders, nil
}

func (s *reminderService) CompleteReminder(ctx context.Context, id string) error {
	if err := s.reminderRepo.MarkCompleted(ctx, id); err != nil {
		return err
	}

	return nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, id string) error {
	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
