package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGrid implements Mailer against the SendGrid v3 mail send API.
type SendGrid struct {
	apiKey string
	from   string
	client *http.Client
}

func NewSendGrid(apiKey, from string) *SendGrid {
	return &SendGrid{
		apiKey: apiKey,
		from:   from,
		client: utils.NewHTTPClient(10 * time.Second),
	}
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgRequest struct {
	Personalizations []struct {
		To []sgAddress `json:"to"`
	} `json:"personalizations"`
	From    sgAddress `json:"from"`
	Subject string    `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func (s *SendGrid) SendConfirmation(ctx context.Context, toEmail, fullName, confirmURL string) error {
	body := sgRequest{
		From:    sgAddress{Email: s.from, Name: "BudgetWise"},
		Subject: "Confirm your BudgetWise account",
	}
	body.Personalizations = []struct {
		To []sgAddress `json:"to"`
	}{{To: []sgAddress{{Email: toEmail, Name: fullName}}}}
	body.Content = []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{{
		Type: "text/html",
		Value: fmt.Sprintf(
			"<p>Hi %s,</p><p>Confirm your account by opening <a href=%q>this link</a>.</p>",
			fullName, confirmURL),
	}}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
