package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slyouthjobs/api/internal/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildSearchQuery_NoFilters_ReturnsEverything(t *testing.T) {
	t.Parallel()

	query, vars := buildSearchQuery(nil)

	assert.NotContains(t, query, "AND", "query without filters should have no AND clauses")
	assert.NotContains(t, query, "LIMIT", "unfiltered search should not truncate results")
	assert.Contains(t, query, "ORDER BY created_on DESC", "query should order newest first")
	assert.Empty(t, vars)
}

func TestBuildSearchQuery_AllFiltersAreConjunctive(t *testing.T) {
	t.Parallel()

	filters := &model.JobFilters{
		Query:      strPtr("Solar"),
		District:   strPtr("Bo"),
		Category:   strPtr("energy"),
		Type:       strPtr(model.JobTypeFullTime),
		Experience: strPtr("entry"),
		IsRemote:   boolPtr(true),
		IsGreenJob: boolPtr(true),
		Limit:      10,
		Offset:     20,
	}

	query, vars := buildSearchQuery(filters)

	for _, clause := range []string{
		"district = $district",
		"category = $category",
		"type = $type",
		"experience_level = $experience",
		"is_remote = true",
		"is_green_job = true",
	} {
		assert.Contains(t, query, clause)
	}

	assert.Equal(t, "solar", vars["q"], "free-text filter should be lowercased")
	assert.Equal(t, "Bo", vars["district"])
	assert.Equal(t, "entry", vars["experience"])
	assert.Equal(t, 10, vars["limit"])
	assert.Equal(t, 20, vars["offset"])
}

func TestBuildSearchQuery_ExperienceIsExactMatch(t *testing.T) {
	t.Parallel()

	query, vars := buildSearchQuery(&model.JobFilters{Experience: strPtr("mid")})

	assert.Contains(t, query, "experience_level = $experience")
	assert.Equal(t, "mid", vars["experience"])
	assert.NotContains(t, query, "string::contains(string::lowercase(experience_level)",
		"experience filter should not be a substring match")
}

func TestBuildSearchQuery_FalseFlagsImposeNoConstraint(t *testing.T) {
	t.Parallel()

	filters := &model.JobFilters{
		IsRemote:   boolPtr(false),
		IsGreenJob: boolPtr(false),
	}

	query, vars := buildSearchQuery(filters)

	// Requesting false is the same as not filtering: remote jobs still
	// appear when is_remote=false is asked for.
	assert.NotContains(t, query, "is_remote")
	assert.NotContains(t, query, "is_green_job")
	_, bound := vars["is_remote"]
	require.False(t, bound, "false flag should not bind a variable")
}

func TestBuildSearchQuery_LimitOnlyWhenRequested(t *testing.T) {
	t.Parallel()

	query, vars := buildSearchQuery(&model.JobFilters{Limit: 25})

	assert.Contains(t, query, "LIMIT $limit")
	assert.Equal(t, 25, vars["limit"])
	assert.NotContains(t, query, "START", "offset clause needs an explicit offset")
}

func TestBuildSearchQuery_TextFilterSearchesThreeFields(t *testing.T) {
	t.Parallel()

	filters := &model.JobFilters{Query: strPtr("teacher")}

	query, _ := buildSearchQuery(filters)

	for _, field := range []string{"title", "description", "company"} {
		assert.Contains(t, query, "string::lowercase("+field+")", "text filter should search %s", field)
	}
}

func TestBuildSearchQuery_EmptyTextFilterIgnored(t *testing.T) {
	t.Parallel()

	filters := &model.JobFilters{Query: strPtr("")}

	query, vars := buildSearchQuery(filters)

	assert.NotContains(t, query, "string::contains", "empty text filter should produce no clause")
	_, bound := vars["q"]
	require.False(t, bound, "empty text filter should not bind $q")
}

func TestBuildSearchQuery_NoExpiryClause(t *testing.T) {
	t.Parallel()

	query, _ := buildSearchQuery(&model.JobFilters{District: strPtr("Kenema")})

	// Expired postings stay visible in search results.
	assert.NotContains(t, query, "expires_at", "search should not filter on expiry")
}

func TestParseJobsResult_MalformedRow_ReturnsError(t *testing.T) {
	t.Parallel()

	repo := &JobRepository{}
	rows := []interface{}{
		map[string]interface{}{
			"result": []interface{}{
				map[string]interface{}{"id": "job:1", "title": "Drill Operator"},
				"not a job row",
			},
		},
	}

	// A row the driver hands back in an unexpected shape is a storage
	// fault, not something to drop quietly.
	_, err := repo.parseJobsResult(rows)
	require.Error(t, err, "malformed row should surface as an error, not be skipped")
}

func TestParseApplicationsResult_MalformedRow_ReturnsError(t *testing.T) {
	t.Parallel()

	repo := &ApplicationRepository{}
	rows := []interface{}{"not an application row"}

	_, err := repo.parseApplicationsResult(rows)
	require.Error(t, err, "malformed row should surface as an error, not be skipped")
}

func TestIsUniqueConstraintError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("Database index `user_email_unique` already contains 'a@b.sl'"), true},
		{errors.New("duplicate key value"), true},
		{errors.New("field must be unique"), true},
		{errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isUniqueConstraintError(tt.err), "isUniqueConstraintError(%v)", tt.err)
	}
}
