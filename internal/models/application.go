package models

// Application is a candidate's submission against one Job. Created once by
// the public workflow, immutable from the public side thereafter.
// Position carries the job title at submit time so the admin search over
// name/email/position works without a join.
type Application struct {
	BaseModel
	JobID            string  `gorm:"type:uuid;not null" json:"job_id"`
	FullName         string  `gorm:"not null" json:"full_name"`
	Email            string  `gorm:"not null" json:"email"`
	PhoneNumber      string  `json:"phone_number"`
	Location         string  `json:"location"`
	Position         string  `json:"position"`
	HowHeard         string  `json:"how_heard"`
	WhyInterested    string  `json:"why_interested"`
	Experience       string  `json:"experience"`
	ResumePath       string  `gorm:"not null" json:"resume_path"`
	CoverLetterPath  *string `json:"cover_letter_path"`
	AgreeDataSharing bool    `gorm:"not null" json:"agree_data_sharing"`
	Status           string  `gorm:"default:submitted" json:"status"`
}
