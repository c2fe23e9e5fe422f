package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ds124wfegd/contactremind/internal/entity"
	"github.com/ds124wfegd/contactremind/pkg/mailer"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type schedulerService struct {
	reminderRepo     ReminderStore
	specialDateRepo  SpecialDateStore
	notificationRepo NotificationStore
	userRepo         UserEmailLookup
	settings         SettingsResolver
	mail             EmailSender
	concurrency      int
	now              func() time.Time
}

// NewSchedulerService creates the upcoming-event scheduler. Concurrency
// bounds the number of events processed in parallel (the mail API has
// its own rate limits).
func NewSchedulerService(
	reminderRepo ReminderStore,
	specialDateRepo SpecialDateStore,
	notificationRepo NotificationStore,
	userRepo UserEmailLookup,
	settings SettingsResolver,
	mail EmailSender,
	concurrency int,
) SchedulerService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &schedulerService{
		reminderRepo:     reminderRepo,
		specialDateRepo:  specialDateRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		settings:         settings,
		mail:             mail,
		concurrency:      concurrency,
		now:              time.Now,
	}
}

// CheckUpcomingEvents is one stateless sweep: two bulk reads, expansion
// into due events, then independent per-event dispatch. Re-invoking the
// sweep within the same window re-delivers: there is no dedupe guard,
// delivery is at-least-once.
func (s *schedulerService) CheckUpcomingEvents(ctx context.Context) (*entity.UpcomingCheckReport, error) {
	now := s.now()

	reminders, err := s.reminderRepo.GetActiveWithContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}

	specialDates, err := s.specialDateRepo.GetAllWithContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch special dates: %w", err)
	}

	events := s.expandEvents(reminders, specialDates, now)
	logrus.Infof("Found %d upcoming events (%d reminders, %d special dates scanned)",
		len(events), len(reminders), len(specialDates))

	if len(events) == 0 {
		return &entity.UpcomingCheckReport{
			Message: "No upcoming events found",
			Results: []entity.EventResult{},
		}, nil
	}

	results := make([]entity.EventResult, 0, len(events))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.concurrency)

	for _, event := range events {
		wg.Add(1)
		go func(event *entity.UpcomingEvent) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := s.safeProcessEvent(ctx, event)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(event)
	}
	wg.Wait()

	// Порядок в отчёте детерминированный, независимо от гонки горутин
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return &entity.UpcomingCheckReport{
		Message: fmt.Sprintf("Processed %d upcoming events", len(events)),
		Results: results,
	}, nil
}

// expandEvents turns the two bulk reads into the flat list of events due
// in this sweep's window. Malformed rows are skipped with a warning and
// never abort the sweep.
func (s *schedulerService) expandEvents(reminders []*entity.ReminderWithContact, specialDates []*entity.SpecialDateWithContact, now time.Time) []*entity.UpcomingEvent {
	var events []*entity.UpcomingEvent

	for _, reminder := range reminders {
		occurrence, due, err := nextOccurrence(reminder, now)
		if err != nil {
			logrus.Warnf("Skipping reminder %s: %v", reminder.ID, err)
			continue
		}
		if !due {
			continue
		}
		events = append(events, reminderEvent(reminder, occurrence))
	}

	for _, specialDate := range specialDates {
		matches, err := specialDateAdvances(specialDate, now)
		if err != nil {
			logrus.Warnf("Skipping special date %s: %v", specialDate.ID, err)
			continue
		}
		for _, match := range matches {
			events = append(events, specialDateEvent(specialDate, match, now))
		}
	}

	return events
}

func reminderEvent(reminder *entity.ReminderWithContact, occurrence time.Time) *entity.UpcomingEvent {
	contact := reminder.ContactName
	if contact == "" {
		contact = "your contact"
	}

	timeStr := ""
	timeInfo := ""
	if reminder.Time != nil && *reminder.Time != "" {
		timeStr = *reminder.Time
		timeInfo = " at " + timeStr
	}

	return &entity.UpcomingEvent{
		ID:           reminder.ID,
		Kind:         entity.EventKindReminder,
		UserID:       reminder.UserID,
		ContactName:  contact,
		Title:        fmt.Sprintf("Reminder: Connect with %s", contact),
		Message:      fmt.Sprintf("You have scheduled to connect with %s on %s%s. Purpose: %s", contact, reminder.Date, timeInfo, reminder.Purpose),
		EventTime:    occurrence,
		Path:         "/reminders",
		Source:       entity.EligibilityReminderFlag,
		ReminderID:   reminder.ID,
		SendEmail:    reminder.SendEmailNotification,
		Purpose:      reminder.Purpose,
		ReminderDate: reminder.Date,
		ReminderTime: timeStr,
	}
}

func specialDateEvent(specialDate *entity.SpecialDateWithContact, match advanceMatch, now time.Time) *entity.UpcomingEvent {
	contact := specialDate.ContactName
	if contact == "" {
		contact = "your contact"
	}

	occasion := specialDate.Occasion()
	targetDate := match.target.Format(dateLayout)

	return &entity.UpcomingEvent{
		ID:          fmt.Sprintf("%s-%s", specialDate.ID, match.offset.suffix),
		Kind:        entity.EventKindSpecialDate,
		UserID:      specialDate.UserID,
		ContactName: contact,
		Title:       fmt.Sprintf("%s's %s is %s", contact, occasion, match.offset.label),
		Message:     fmt.Sprintf("%s's %s on %s is %s.", contact, occasion, targetDate, match.offset.label),
		// The advance notice itself is due the moment it is produced;
		// the anniversary date travels in TargetDate.
		EventTime:     now,
		Path:          "/contacts/" + specialDate.ContactID,
		Source:        entity.EligibilityUserSettings,
		SpecialDateID: specialDate.ID,
		Occasion:      occasion,
		OffsetDays:    match.offset.days,
		OffsetLabel:   match.offset.label,
		TargetDate:    targetDate,
	}
}

// safeProcessEvent converts a panic in one event's processing into an
// error result instead of letting it abort the sweep.
func (s *schedulerService) safeProcessEvent(ctx context.Context, event *entity.UpcomingEvent) (result entity.EventResult) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Panic while processing event %s: %v", event.ID, r)
			result = entity.EventResult{
				ID:          event.ID,
				Type:        event.Kind,
				Status:      entity.StatusError,
				Message:     fmt.Sprintf("internal error: %v", r),
				Contact:     event.ContactName,
				ProcessedAt: s.now(),
			}
		}
	}()
	return s.processEvent(ctx, event)
}

// processEvent dispatches the two channels for one event. The channels
// are independent: неудача одного никогда не отменяет попытку другого.
func (s *schedulerService) processEvent(ctx context.Context, event *entity.UpcomingEvent) entity.EventResult {
	eligible := s.resolveEligibility(ctx, event)

	email, err := s.userRepo.GetEmailByID(ctx, event.UserID)
	if err != nil {
		logrus.Warnf("Could not resolve email for user %s: %v", event.UserID, err)
		email = ""
	}

	emailAttempted := eligible && email != ""
	emailOK := false
	if emailAttempted {
		if err := s.sendEmail(ctx, event, email); err != nil {
			logrus.Errorf("Email dispatch failed for event %s: %v", event.ID, err)
		} else {
			emailOK = true
		}
	}

	inAppOK := true
	if err := s.notificationRepo.Create(ctx, s.buildNotification(event)); err != nil {
		logrus.Errorf("In-app notification insert failed for event %s: %v", event.ID, err)
		inAppOK = false
	}

	return entity.EventResult{
		ID:          event.ID,
		Type:        event.Kind,
		Status:      classifyOutcome(emailAttempted, emailOK, inAppOK),
		Message:     outcomeMessage(emailAttempted, emailOK, inAppOK),
		Contact:     event.ContactName,
		ProcessedAt: s.now(),
	}
}

// resolveEligibility decides whether the email channel should be
// attempted for the event.
func (s *schedulerService) resolveEligibility(ctx context.Context, event *entity.UpcomingEvent) bool {
	switch event.Kind {
	case entity.EventKindReminder:
		// The per-reminder opt-in is authoritative, no fallback to
		// global settings.
		return event.SendEmail
	case entity.EventKindSpecialDate:
		enabled, err := s.settings.EmailEnabled(ctx, event.UserID)
		if err != nil {
			// Fail closed: never send an unrequested email on a
			// failed lookup.
			logrus.Warnf("Settings lookup failed for user %s, skipping email: %v", event.UserID, err)
			return false
		}
		return enabled
	default:
		return false
	}
}

func (s *schedulerService) sendEmail(ctx context.Context, event *entity.UpcomingEvent, recipient string) error {
	switch event.Kind {
	case entity.EventKindReminder:
		return s.mail.SendReminderEmail(ctx, &mailer.ReminderEmail{
			RecipientEmail: recipient,
			ContactName:    event.ContactName,
			ReminderDate:   event.ReminderDate,
			ReminderTime:   event.ReminderTime,
			Purpose:        event.Purpose,
		})
	case entity.EventKindSpecialDate:
		return s.mail.SendSpecialDateEmail(ctx, &mailer.SpecialDateEmail{
			RecipientEmail: recipient,
			ContactName:    event.ContactName,
			Occasion:       event.Occasion,
			TargetDate:     event.TargetDate,
			OffsetLabel:    event.OffsetLabel,
		})
	default:
		return fmt.Errorf("unknown event kind %q", event.Kind)
	}
}

func (s *schedulerService) buildNotification(event *entity.UpcomingEvent) *entity.Notification {
	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    event.UserID,
		Title:     event.Title,
		Message:   event.Message,
		Data:      map[string]interface{}{"path": event.Path},
		IsRead:    false,
		CreatedAt: s.now(),
	}

	switch event.Kind {
	case entity.EventKindReminder:
		notification.Type = entity.NotificationTypeReminderDue
		reminderID := event.ReminderID
		notification.ReminderID = &reminderID
	case entity.EventKindSpecialDate:
		notification.Type = entity.NotificationTypeSpecialDateAdvance
	}

	return notification
}

func classifyOutcome(emailAttempted, emailOK, inAppOK bool) entity.EventStatus {
	if emailAttempted {
		switch {
		case emailOK && inAppOK:
			return entity.StatusSuccess
		case emailOK || inAppOK:
			return entity.StatusPartialSuccess
		default:
			return entity.StatusError
		}
	}
	if inAppOK {
		return entity.StatusSuccessNoEmail
	}
	return entity.StatusError
}

func outcomeMessage(emailAttempted, emailOK, inAppOK bool) string {
	switch {
	case emailAttempted && emailOK && inAppOK:
		return "email and in-app notification delivered"
	case emailAttempted && emailOK && !inAppOK:
		return "email delivered, in-app notification failed"
	case emailAttempted && !emailOK && inAppOK:
		return "in-app notification delivered, email failed"
	case emailAttempted && !emailOK && !inAppOK:
		return "email and in-app notification failed"
	case !emailAttempted && inAppOK:
		return "in-app notification delivered, email not requested"
	default:
		return "in-app notification failed, email not requested"
	}
}
