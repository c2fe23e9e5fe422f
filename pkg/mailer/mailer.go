// Package mailer is a thin client for the Resend transactional email API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ds124wfegd/contactremind/config"
)

type Client struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
}

func NewClient(cfg *config.EmailConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		from:    cfg.From,
		client:  &http.Client{Timeout: timeout},
	}
}

// ReminderEmail is the payload of a reminder-due email.
type ReminderEmail struct {
	RecipientEmail string `json:"recipientEmail"`
	ContactName    string `json:"contactName"`
	ReminderDate   string `json:"reminderDate"`
	ReminderTime   string `json:"reminderTime"`
	Purpose        string `json:"purpose"`
}

// SpecialDateEmail is the payload of a special-date advance email.
type SpecialDateEmail struct {
	RecipientEmail string `json:"recipientEmail"`
	ContactName    string `json:"contactName"`
	Occasion       string `json:"occasion"`
	TargetDate     string `json:"targetDate"`
	OffsetLabel    string `json:"offsetLabel"`
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (c *Client) SendReminderEmail(ctx context.Context, email *ReminderEmail) error {
	timeInfo := ""
	if email.ReminderTime != "" {
		timeInfo = " at " + email.ReminderTime
	}

	req := &sendRequest{
		From:    c.from,
		To:      []string{email.RecipientEmail},
		Subject: fmt.Sprintf("Reminder: Connect with %s", email.ContactName),
		HTML: fmt.Sprintf(`
        <h1>Reminder: Connect with %s</h1>
        <p>This is a reminder that you have scheduled to connect with %s on %s%s.</p>
        <p><strong>Purpose:</strong> %s</p>
        <p>Don't forget to update your conversation history after connecting!</p>
        <hr />
        <p style="color: #666; font-size: 12px;">This email was sent from your ContactRemind application.</p>
      `, email.ContactName, email.ContactName, email.ReminderDate, timeInfo, email.Purpose),
	}

	return c.send(ctx, req)
}

func (c *Client) SendSpecialDateEmail(ctx context.Context, email *SpecialDateEmail) error {
	req := &sendRequest{
		From:    c.from,
		To:      []string{email.RecipientEmail},
		Subject: fmt.Sprintf("Upcoming: %s's %s is %s", email.ContactName, email.Occasion, email.OffsetLabel),
		HTML: fmt.Sprintf(`
        <h1>%s's %s is coming up</h1>
        <p>%s's %s on %s is %s.</p>
        <p>Now is a good time to plan how you want to mark it!</p>
        <hr />
        <p style="color: #666; font-size: 12px;">This email was sent from your ContactRemind application.</p>
      `, email.ContactName, email.Occasion, email.ContactName, email.Occasion, email.TargetDate, email.OffsetLabel),
	}

	return c.send(ctx, req)
}

func (c *Client) send(ctx context.Context, req *sendRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call email API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email API error: %s: %s", resp.Status, string(respBody))
	}

	return nil
}
