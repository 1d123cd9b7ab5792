package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/slyouthjobs/api/internal/database"
	"github.com/slyouthjobs/api/internal/model"
)

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `
		CREATE job CONTENT {
			title: $title,
			company: $company,
			location: $location,
			district: $district,
			type: $type,
			category: $category,
			description: $description,
			salary_range: IF $salary_range IS NOT NULL THEN $salary_range ELSE NONE END,
			experience_level: IF $experience_level IS NOT NULL THEN $experience_level ELSE NONE END,
			requirements: IF $requirements IS NOT NULL THEN $requirements ELSE NONE END,
			is_remote: $is_remote,
			is_green_job: $is_green_job,
			employer_id: $employer_id,
			expires_at: $expires_at,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":            job.Title,
		"company":          job.Company,
		"location":         job.Location,
		"district":         job.District,
		"type":             job.Type,
		"category":         job.Category,
		"description":      job.Description,
		"salary_range":     ptrToNone(job.SalaryRange),
		"experience_level": ptrToNone(job.ExperienceLevel),
		"requirements":     ptrToNone(job.Requirements),
		"is_remote":        job.IsRemote,
		"is_green_job":     job.IsGreenJob,
		"employer_id":      job.EmployerID,
		"expires_at":       job.ExpiresAt,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	job.ID = created.ID
	job.CreatedOn = created.CreatedOn
	return nil
}

// GetByID retrieves a job by ID. Returns (nil, nil) when not found.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	job, err := r.parseJobResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

// Search returns jobs matching all set filters, newest first. Expired
// postings are included; the caller decides how to present them.
func (r *JobRepository) Search(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
	query, vars := buildSearchQuery(filters)

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseJobsResult(result)
}

// buildSearchQuery assembles the conjunctive filter query. The free-text
// filter is lowercased in Go so the SurrealQL side only does a contains
// check on lowercased fields.
func buildSearchQuery(filters *model.JobFilters) (string, map[string]interface{}) {
	query := `SELECT * FROM job WHERE true`
	vars := map[string]interface{}{}

	if filters != nil {
		if filters.Category != nil {
			query += ` AND category = $category`
			vars["category"] = *filters.Category
		}
		if filters.District != nil {
			query += ` AND district = $district`
			vars["district"] = *filters.District
		}
		if filters.Experience != nil {
			query += ` AND experience_level = $experience`
			vars["experience"] = *filters.Experience
		}
		if filters.Type != nil {
			query += ` AND type = $type`
			vars["type"] = *filters.Type
		}
		if filters.Query != nil && *filters.Query != "" {
			query += ` AND (string::contains(string::lowercase(title), $q)` +
				` OR string::contains(string::lowercase(description), $q)` +
				` OR string::contains(string::lowercase(company), $q))`
			vars["q"] = strings.ToLower(*filters.Query)
		}
		// The boolean flags filter only when requested as true; an
		// explicit false imposes no constraint.
		if filters.IsRemote != nil && *filters.IsRemote {
			query += ` AND is_remote = true`
		}
		if filters.IsGreenJob != nil && *filters.IsGreenJob {
			query += ` AND is_green_job = true`
		}
	}

	query += ` ORDER BY created_on DESC`

	// An unfiltered search returns every posting; LIMIT applies only when
	// the caller asked for a window.
	if filters != nil && filters.Limit > 0 {
		query += ` LIMIT $limit`
		vars["limit"] = filters.Limit
	}
	if filters != nil && filters.Offset > 0 {
		query += ` START $offset`
		vars["offset"] = filters.Offset
	}

	return query, vars
}

// CountByDistrict returns job counts grouped by district. Districts with no
// jobs are absent from the result; the service layer zero-fills them.
func (r *JobRepository) CountByDistrict(ctx context.Context) (map[string]int, error) {
	query := `SELECT district, count() AS count FROM job GROUP BY district`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	rows, ok := extractQueryResults(result)
	if !ok {
		return counts, nil
	}

	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		district := getString(data, "district")
		if district == "" {
			continue
		}
		counts[district] = extractCountValue(data["count"])
	}

	return counts, nil
}

func (r *JobRepository) parseJobResult(result interface{}) (*model.Job, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	if id, ok := data["id"]; ok {
		data["id"] = convertSurrealID(id)
	}

	// employer_id may come back as a record object
	if eid, ok := data["employer_id"]; ok {
		data["employer_id"] = convertSurrealID(eid)
	}

	// Datetimes arrive as driver types; extract them before the JSON
	// roundtrip so they can't break unmarshaling into time.Time.
	expiresAt := getTime(data, "expires_at")
	createdOn := getTime(data, "created_on")
	delete(data, "expires_at")
	delete(data, "created_on")

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var job model.Job
	if err := json.Unmarshal(jsonBytes, &job); err != nil {
		return nil, err
	}

	if expiresAt != nil {
		job.ExpiresAt = *expiresAt
	}
	if createdOn != nil {
		job.CreatedOn = *createdOn
	}

	return &job, nil
}

func (r *JobRepository) parseJobsResult(result []interface{}) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					job, err := r.parseJobResult(item)
					if err != nil {
						return nil, fmt.Errorf("parsing job row: %w", err)
					}
					jobs = append(jobs, job)
				}
				continue
			}
		}

		job, err := r.parseJobResult(res)
		if err != nil {
			return nil, fmt.Errorf("parsing job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
