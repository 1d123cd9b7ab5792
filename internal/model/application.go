package model

import "time"

// ApplicationStatus constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application represents a jobseeker's application to a job.
// A user can apply to a given job at most once.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	UserID      string    `json:"user_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	CreatedOn   time.Time `json:"created_on"`
}

// ApplicationWithJob is an application joined with a summary of its job,
// used for the "my applications" listing.
type ApplicationWithJob struct {
	Application
	JobTitle    string `json:"job_title"`
	JobCompany  string `json:"job_company"`
	JobLocation string `json:"job_location"`
	JobDistrict string `json:"job_district"`
}
