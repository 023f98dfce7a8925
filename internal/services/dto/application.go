package dto

import "io"

// FileUpload is one attachment taken off the multipart form.
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// SubmitApplicationRequest carries the application form. The consent flag
// and the resume are checked before any store call is made.
type SubmitApplicationRequest struct {
	FullName         string `json:"full_name" validate:"required,min=2,max=200"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	Location         string `json:"location" validate:"required"`
	HowHeard         string `json:"how_heard" validate:"required,howheard"`
	WhyInterested    string `json:"why_interested" validate:"required"`
	Experience       string `json:"experience" validate:"required"`
	AgreeDataSharing bool   `json:"agree_data_sharing"`

	Resume      *FileUpload `json:"-"`
	CoverLetter *FileUpload `json:"-"`
}

// UpdateApplicationStatusRequest moves an application inside the closed
// status set.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,appstatus"`
}

// ApplicationFilter is the admin search: case-insensitive substring over
// full name, email and position, ANDed with an exact status match.
// Status "all" (or empty) imposes no constraint.
type ApplicationFilter struct {
	Search string `form:"search" json:"search"`
	Status string `form:"status" json:"status" validate:"omitempty,oneof=all submitted reviewing rejected accepted"`
}

// SignedURLRequest mirrors the get-signed-url function body.
type SignedURLRequest struct {
	Path    string `json:"path"`
	Expires int    `json:"expires"`
}
