package models

// Job is a position posting. Slug is the only public lookup key and
// status == "active" is the sole gate for public listing.
type Job struct {
	BaseModel
	Title            string  `gorm:"not null" json:"title"`
	Slug             string  `gorm:"uniqueIndex;not null" json:"slug"`
	ShortDescription string  `json:"short_description"`
	Description      string  `json:"description"`
	Overview         string  `json:"overview"`
	PositionSummary  string  `json:"position_summary"`
	Responsibilities string  `json:"responsibilities"`
	Requirements     string  `json:"requirements"`
	Qualifications   string  `json:"qualifications"`
	Benefits         string  `json:"benefits"`
	Location         string  `json:"location"`
	Salary           string  `json:"salary"`
	JobTypeID        *string `gorm:"type:uuid" json:"job_type_id"`
	Status           string  `gorm:"default:draft" json:"status"`
}

// JobCard is the projection the public listing needs for one card.
type JobCard struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	Location         string `json:"location"`
	Salary           string `json:"salary"`
}
