package email

import (
	"fmt"
	"strings"

	"jobboard_backend/internal/models"
)

// NewApplicationNotification builds the plain-text email describing a new
// application, addressed to the single fixed recipient.
func NewApplicationNotification(from, to string, app *models.Application, job *models.Job) *Email {
	subject := fmt.Sprintf("New application: %s — %s", job.Title, app.FullName)

	whyInterested := app.WhyInterested
	if whyInterested == "" {
		whyInterested = "(none)"
	}

	resumePath := app.ResumePath
	if resumePath == "" {
		resumePath = "N/A"
	}

	coverLetterPath := "N/A"
	if app.CoverLetterPath != nil && *app.CoverLetterPath != "" {
		coverLetterPath = *app.CoverLetterPath
	}

	body := strings.Join([]string{
		"A new application has been submitted.",
		"",
		"Job: " + job.Title,
		"Applicant: " + app.FullName,
		"Email: " + app.Email,
		"Phone: " + app.PhoneNumber,
		"Location: " + app.Location,
		"",
		"Why interested:",
		whyInterested,
		"",
		"Resume path: " + resumePath,
		"Cover letter path: " + coverLetterPath,
		"",
		"Log into admin to review the full application.",
	}, "\n")

	return &Email{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Body:    body,
	}
}
