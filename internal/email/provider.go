package email

import "fmt"

// Provider defines the outbound email boundary.
type Provider interface {
	// Send delivers one email message
	Send(email *Email) error

	// Validate checks the provider configuration
	Validate() error

	// Close releases provider resources
	Close() error
}

// SendError is returned when the provider rejects a send. Detail carries
// the provider's own response text so the notification handler can surface
// it verbatim.
type SendError struct {
	StatusCode int
	Detail     string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("email provider returned status %d: %s", e.StatusCode, e.Detail)
}
