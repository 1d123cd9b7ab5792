package repository

import (
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError reports whether err came from a unique index
// rejecting a write. SurrealDB surfaces these as plain message strings.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unique") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "already exists")
}

// extractQueryResults unwraps the {status, result} envelope the driver puts
// around each statement's rows.
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	results, ok := result.([]interface{})
	if !ok || len(results) == 0 {
		return nil, false
	}
	if first, ok := results[0].(map[string]interface{}); ok {
		if rows, ok := first["result"].([]interface{}); ok {
			return rows, true
		}
	}
	return results, true
}

// extractCount pulls the count value out of a SELECT count() response.
func extractCount(result interface{}) int {
	resp, ok := result.(map[string]interface{})
	if !ok {
		return 0
	}
	if status, ok := resp["status"].(string); ok && status == "OK" {
		if rows, ok := resp["result"].([]interface{}); ok && len(rows) > 0 {
			if row, ok := rows[0].(map[string]interface{}); ok {
				return extractCountValue(row["count"])
			}
		}
	}
	return extractCountValue(resp["count"])
}

// extractCountValue folds the numeric types the CBOR decoder may hand back.
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// getTime reads a timestamp field regardless of whether the driver decoded it
// as a string, a time.Time, or its own CustomDateTime wrapper.
func getTime(m map[string]interface{}, key string) *time.Time {
	switch v := m[key].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	case time.Time:
		return &v
	case models.CustomDateTime:
		t := v.Time
		return &t
	case *models.CustomDateTime:
		if v != nil {
			t := v.Time
			return &t
		}
	}
	return nil
}
