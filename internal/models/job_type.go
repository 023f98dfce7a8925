package models

// JobType is a labeled category a Job may reference. Deleting a JobType
// nulls the reference on Jobs, it never cascades.
type JobType struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
}
