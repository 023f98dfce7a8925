package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGridProvider sends mail through the SendGrid v3 REST API.
type SendGridProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewSendGridProvider creates a SendGrid provider.
func NewSendGridProvider(apiKey string) *SendGridProvider {
	return &SendGridProvider{
		apiKey:   apiKey,
		endpoint: sendGridEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// WithEndpoint overrides the API endpoint. Used by tests.
func (p *SendGridProvider) WithEndpoint(endpoint string) *SendGridProvider {
	p.endpoint = endpoint
	return p
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridPayload struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

// Send delivers one message. Non-2xx responses come back as *SendError
// carrying SendGrid's response body.
func (p *SendGridProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var to []sendGridAddress
	for _, addr := range email.To {
		to = append(to, sendGridAddress{Email: addr})
	}

	contentType := "text/plain"
	value := email.Body
	if email.HTMLBody != "" {
		contentType = "text/html"
		value = email.HTMLBody
	}

	payload := sendGridPayload{
		Personalizations: []sendGridPersonalization{{To: to}},
		From:             sendGridAddress{Email: email.From},
		Subject:          email.Subject,
		Content:          []sendGridContent{{Type: contentType, Value: value}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sendgrid payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		detail, _ := io.ReadAll(res.Body)
		return &SendError{StatusCode: res.StatusCode, Detail: string(detail)}
	}

	return nil
}

// Validate checks the provider configuration
func (p *SendGridProvider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("sendgrid API key is required")
	}
	return nil
}

// Close is a no-op for the REST provider
func (p *SendGridProvider) Close() error {
	return nil
}
