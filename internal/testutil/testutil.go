package testutil

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestHomework creates a homework record as decoded from the API
func NewTestHomework(name, status string) map[string]any {
	return map[string]any{
		"id":               1,
		"homework_name":    name,
		"status":           status,
		"reviewer_comment": "",
	}
}

// NewTestAnswer creates an API answer with the given records and current_date
func NewTestAnswer(currentDate int64, homeworks ...map[string]any) map[string]any {
	list := make([]any, 0, len(homeworks))
	for _, homework := range homeworks {
		list = append(list, homework)
	}
	return map[string]any{
		"homeworks":    list,
		"current_date": json.Number(strconv.FormatInt(currentDate, 10)),
	}
}
