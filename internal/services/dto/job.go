package dto

// --- Job Requests (admin) ---

type CreateJobRequest struct {
	Title            string  `json:"title" validate:"required,min=2,max=200"`
	Slug             string  `json:"slug" validate:"required,min=2,max=200"`
	ShortDescription string  `json:"short_description" validate:"omitempty,max=500"`
	Description      string  `json:"description"`
	Overview         string  `json:"overview"`
	PositionSummary  string  `json:"position_summary"`
	Responsibilities string  `json:"responsibilities"`
	Requirements     string  `json:"requirements"`
	Qualifications   string  `json:"qualifications"`
	Benefits         string  `json:"benefits"`
	Location         string  `json:"location"`
	Salary           string  `json:"salary"`
	JobTypeID        *string `json:"job_type_id" validate:"omitempty,uuid"`
	Status           string  `json:"status" validate:"omitempty,oneof=active draft closed"`
}

type UpdateJobRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Slug             *string `json:"slug,omitempty" validate:"omitempty,min=2,max=200"`
	ShortDescription *string `json:"short_description,omitempty" validate:"omitempty,max=500"`
	Description      *string `json:"description,omitempty"`
	Overview         *string `json:"overview,omitempty"`
	PositionSummary  *string `json:"position_summary,omitempty"`
	Responsibilities *string `json:"responsibilities,omitempty"`
	Requirements     *string `json:"requirements,omitempty"`
	Qualifications   *string `json:"qualifications,omitempty"`
	Benefits         *string `json:"benefits,omitempty"`
	Location         *string `json:"location,omitempty"`
	Salary           *string `json:"salary,omitempty"`
	JobTypeID        *string `json:"job_type_id,omitempty" validate:"omitempty,uuid"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=active draft closed"`
}

type CreateJobTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
