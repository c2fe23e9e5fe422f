package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ds124wfegd/contactremind/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminderRepo struct {
	created *entity.Reminder
	err     error
}

func (f *fakeReminderRepo) Create(ctx context.Context, reminder *entity.Reminder) error {
	if f.err != nil {
		return f.err
	}
	f.created = reminder
	return nil
}

func (f *fakeReminderRepo) GetByID(ctx context.Context, id string) (*entity.Reminder, error) {
	return nil, entity.ErrReminderNotFound
}

func (f *fakeReminderRepo) GetByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	return nil, nil
}

func (f *fakeReminderRepo) MarkCompleted(ctx context.Context, id string) error { return f.err }

func (f *fakeReminderRepo) Delete(ctx context.Context, id string) error { return f.err }

func (f *fakeReminderRepo) GetActiveWithContacts(ctx context.Context) ([]*entity.ReminderWithContact, error) {
	return nil, nil
}

func validCreateRequest() *CreateReminderRequest {
	return &CreateReminderRequest{
		UserID:  "user-1",
		Date:    "2026-03-10",
		Time:    strPtr("14:30"),
		Purpose: "catch up",
	}
}

func TestCreateReminderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *CreateReminderRequest)
		wantErr error
	}{
		{
			name:   "valid one-off reminder",
			mutate: func(req *CreateReminderRequest) {},
		},
		{
			name: "valid recurring reminder",
			mutate: func(req *CreateReminderRequest) {
				req.IsRecurring = true
				req.Frequency = strPtr("weekly")
			},
		},
		{
			name:    "malformed date",
			mutate:  func(req *CreateReminderRequest) { req.Date = "03/10/2026" },
			wantErr: entity.ErrInvalidDateFormat,
		},
		{
			name:    "malformed time",
			mutate:  func(req *CreateReminderRequest) { req.Time = strPtr("2pm") },
			wantErr: entity.ErrInvalidInput,
		},
		{
			name: "recurring without frequency",
			mutate: func(req *CreateReminderRequest) {
				req.IsRecurring = true
				req.Frequency = nil
			},
			wantErr: entity.ErrFrequencyRequired,
		},
		{
			name: "recurring with empty frequency",
			mutate: func(req *CreateReminderRequest) {
				req.IsRecurring = true
				req.Frequency = strPtr("")
			},
			wantErr: entity.ErrFrequencyRequired,
		},
		{
			name: "unknown frequency",
			mutate: func(req *CreateReminderRequest) {
				req.IsRecurring = true
				req.Frequency = strPtr("fortnightly")
			},
			wantErr: entity.ErrInvalidFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReminderRepo{}
			svc := NewReminderService(repo)

			req := validCreateRequest()
			tt.mutate(req)

			reminder, err := svc.CreateReminder(context.Background(), req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, reminder)
				assert.Nil(t, repo.created)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, reminder)
			assert.NotEmpty(t, reminder.ID)
			assert.False(t, reminder.IsCompleted)
			assert.Equal(t, reminder, repo.created)
		})
	}
}

// Частота нерекуррентного напоминания обнуляется при создании
func TestCreateReminderDropsFrequencyWhenNotRecurring(t *testing.T) {
	repo := &fakeReminderRepo{}
	svc := NewReminderService(repo)

	req := validCreateRequest()
	req.IsRecurring = false
	req.Frequency = strPtr("weekly")

	reminder, err := svc.CreateReminder(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, reminder.Frequency)
}

func TestCreateReminderRepoFailure(t *testing.T) {
	repo := &fakeReminderRepo{err: errors.New("insert failed")}
	svc := NewReminderService(repo)

	reminder, err := svc.CreateReminder(context.Background(), validCreateRequest())

	require.Error(t, err)
	assert.Nil(t, reminder)
	assert.Contains(t, err.Error(), "failed to create reminder")
}
