package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ds124wfegd/contactremind/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.EmailConfig{
		From:    "ContactRemind <onboarding@resend.dev>",
		BaseURL: baseURL,
		APIKey:  "test-api-key",
		Timeout: 5 * time.Second,
	})
}

func TestSendReminderEmail(t *testing.T) {
	var got sendRequest
	var gotAuth, gotContentType, gotPath, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := testClient(server.URL).SendReminderEmail(context.Background(), &ReminderEmail{
		RecipientEmail: "user@example.com",
		ContactName:    "Alice",
		ReminderDate:   "2026-03-10",
		ReminderTime:   "14:30",
		Purpose:        "catch up",
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, "Bearer test-api-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	assert.Equal(t, "ContactRemind <onboarding@resend.dev>", got.From)
	assert.Equal(t, []string{"user@example.com"}, got.To)
	assert.Equal(t, "Reminder: Connect with Alice", got.Subject)
	assert.Contains(t, got.HTML, "connect with Alice on 2026-03-10 at 14:30")
	assert.Contains(t, got.HTML, "catch up")
}

// У напоминания без времени суффикс " at" в письме отсутствует
func TestSendReminderEmailWithoutTime(t *testing.T) {
	var got sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := testClient(server.URL).SendReminderEmail(context.Background(), &ReminderEmail{
		RecipientEmail: "user@example.com",
		ContactName:    "Alice",
		ReminderDate:   "2026-03-10",
		Purpose:        "catch up",
	})

	require.NoError(t, err)
	assert.Contains(t, got.HTML, "connect with Alice on 2026-03-10.")
	assert.NotContains(t, got.HTML, " at ")
}

func TestSendSpecialDateEmail(t *testing.T) {
	var got sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := testClient(server.URL).SendSpecialDateEmail(context.Background(), &SpecialDateEmail{
		RecipientEmail: "user@example.com",
		ContactName:    "Bob",
		Occasion:       "birthday",
		TargetDate:     "2026-07-04",
		OffsetLabel:    "1 week away",
	})

	require.NoError(t, err)
	assert.Equal(t, "Upcoming: Bob's birthday is 1 week away", got.Subject)
	assert.Contains(t, got.HTML, "Bob's birthday on 2026-07-04 is 1 week away.")
}

func TestSendEmailAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	err := testClient(server.URL).SendReminderEmail(context.Background(), &ReminderEmail{
		RecipientEmail: "user@example.com",
		ContactName:    "Alice",
		ReminderDate:   "2026-03-10",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email API error")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestSendEmailServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже остановлен

	err := testClient(server.URL).SendReminderEmail(context.Background(), &ReminderEmail{
		RecipientEmail: "user@example.com",
		ContactName:    "Alice",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call email API")
}
