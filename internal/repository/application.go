package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/slyouthjobs/api/internal/database"
	"github.com/slyouthjobs/api/internal/model"
)

// ApplicationRepository handles job application data access
type ApplicationRepository struct {
	db database.Database
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db database.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create records an application. The composite unique index on
// (job_id, user_id) makes a second application to the same job fail with
// ErrDuplicate, even under concurrent requests.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	status := app.Status
	if status == "" {
		status = model.ApplicationStatusPending
	}

	query := `
		CREATE application CONTENT {
			job_id: $job_id,
			user_id: $user_id,
			cover_letter: IF $cover_letter IS NOT NULL THEN $cover_letter ELSE NONE END,
			status: $status,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"job_id":       app.JobID,
		"user_id":      app.UserID,
		"cover_letter": ptrToNone(app.CoverLetter),
		"status":       status,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: already applied to this job", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	app.ID = created.ID
	app.Status = status
	app.CreatedOn = created.CreatedOn
	return nil
}

// Exists reports whether the user has already applied to the job.
func (r *ApplicationRepository) Exists(ctx context.Context, jobID, userID string) (bool, error) {
	query := `SELECT count() FROM application WHERE job_id = $job_id AND user_id = $user_id GROUP ALL`
	vars := map[string]interface{}{
		"job_id":  jobID,
		"user_id": userID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		return extractCountValue(data["count"]) > 0, nil
	}
	return extractCount(result) > 0, nil
}

// ListByUser returns the user's applications, newest first.
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*model.Application, error) {
	query := `SELECT * FROM application WHERE user_id = $user_id ORDER BY created_on DESC`
	vars := map[string]interface{}{"user_id": userID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseApplicationsResult(result)
}

func (r *ApplicationRepository) parseApplicationResult(result interface{}) (*model.Application, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	app := &model.Application{
		JobID:  getString(data, "job_id"),
		UserID: getString(data, "user_id"),
		Status: getString(data, "status"),
	}

	if id, ok := data["id"]; ok {
		app.ID = convertSurrealID(id)
	}
	if jid, ok := data["job_id"]; ok {
		app.JobID = convertSurrealID(jid)
	}
	if uid, ok := data["user_id"]; ok {
		app.UserID = convertSurrealID(uid)
	}
	app.CoverLetter = getStringPtr(data, "cover_letter")
	if t := getTime(data, "created_on"); t != nil {
		app.CreatedOn = *t
	}

	return app, nil
}

func (r *ApplicationRepository) parseApplicationsResult(result []interface{}) ([]*model.Application, error) {
	apps := make([]*model.Application, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					app, err := r.parseApplicationResult(item)
					if err != nil {
						return nil, fmt.Errorf("parsing application row: %w", err)
					}
					apps = append(apps, app)
				}
				continue
			}
		}

		app, err := r.parseApplicationResult(res)
		if err != nil {
			return nil, fmt.Errorf("parsing application row: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, nil
}
