package model

import "time"

// JobType constants
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeApprentice = "apprenticeship"
	JobTypeVolunteer  = "volunteer"
)

// ExpiryDays is how long a posting stays fresh after creation. Expired jobs
// remain visible in search results; clients decide how to render them.
const ExpiryDays = 30

// Job represents a job posting
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	District        string    `json:"district"`
	Type            string    `json:"type"`     // full-time, part-time, contract, ...
	Category        string    `json:"category"` // e.g. agriculture, tech, trades
	Description     string    `json:"description"`
	SalaryRange     *string   `json:"salary_range,omitempty"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	Requirements    *string   `json:"requirements,omitempty"`
	IsRemote        bool      `json:"is_remote"`
	IsGreenJob      bool      `json:"is_green_job"` // Climate/environment sector
	EmployerID      string    `json:"employer_id"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedOn       time.Time `json:"created_on"`
}

// IsExpired reports whether the posting's freshness window has passed.
func (j *Job) IsExpired(now time.Time) bool {
	return now.After(j.ExpiresAt)
}

// JobDetail is a job with its employer's public contact info attached
type JobDetail struct {
	Job
	EmployerName string `json:"employer_name"`
	ContactEmail string `json:"contact_email"`
}

// JobFilters narrows a job search. All set filters must match (AND semantics).
// Nil fields are ignored. The boolean flags filter only when set to true;
// an explicit false imposes no constraint, matching how the listing has
// always behaved.
type JobFilters struct {
	Query      *string // Substring match on title, description, or company
	District   *string
	Category   *string
	Type       *string
	Experience *string // Exact match on experience_level
	IsRemote   *bool
	IsGreenJob *bool
	Limit      int // 0 means no limit
	Offset     int
}
