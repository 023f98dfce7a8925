package models

// Job statuses. Only "active" is publicly visible.
const (
	JobStatusActive = "active"
	JobStatusDraft  = "draft"
	JobStatusClosed = "closed"
)

// Application statuses.
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusAccepted  = "accepted"
)

// ApplicationStatuses is the closed status set, used by the admin filter
// and the status update endpoint.
var ApplicationStatuses = []string{
	ApplicationStatusSubmitted,
	ApplicationStatusReviewing,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
}

// IsValidApplicationStatus reports whether s belongs to the closed set.
func IsValidApplicationStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// HowHeard choices accepted on the application form.
var HowHeardChoices = []string{
	"linkedin",
	"indeed",
	"company-website",
	"referral",
	"job-board",
	"other",
}
