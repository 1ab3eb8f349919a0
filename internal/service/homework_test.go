package service

import (
	"encoding/json"
	"testing"

	"homeworkbot/internal/domain"
	"homeworkbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHomeworkService_CheckResponse(t *testing.T) {
	tests := []struct {
		name          string
		answer        any
		expectedLen   int
		expectedError bool
	}{
		{
			name: "two homeworks",
			answer: map[string]any{
				"homeworks": []any{
					testutil.NewTestHomework("proj1", "approved"),
					testutil.NewTestHomework("proj2", "rejected"),
				},
				"current_date": json.Number("1700000000"),
			},
			expectedLen:   2,
			expectedError: false,
		},
		{
			name:          "empty homeworks",
			answer:        map[string]any{"homeworks": []any{}, "current_date": json.Number("1700000000")},
			expectedLen:   0,
			expectedError: false,
		},
		{
			name:          "answer is a list",
			answer:        []any{map[string]any{"homeworks": []any{}}},
			expectedError: true,
		},
		{
			name:          "answer is nil",
			answer:        nil,
			expectedError: true,
		},
		{
			name:          "homeworks missing",
			answer:        map[string]any{"current_date": json.Number("1700000000")},
			expectedError: true,
		},
		{
			name:          "homeworks is an object",
			answer:        map[string]any{"homeworks": map[string]any{"homework_name": "proj1"}},
			expectedError: true,
		},
		{
			name:          "homeworks is a string",
			answer:        map[string]any{"homeworks": "proj1"},
			expectedError: true,
		},
		{
			name:          "homeworks is null",
			answer:        map[string]any{"homeworks": nil},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHomeworkService(testutil.NewTestLogger())

			homeworks, err := service.CheckResponse(tt.answer)

			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrUnexpectedType)
				assert.Nil(t, homeworks)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, homeworks)
				assert.Len(t, homeworks, tt.expectedLen)
			}
		})
	}
}

func TestHomeworkService_CheckResponse_LogsError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	service := NewHomeworkService(zap.New(core))

	_, err := service.CheckResponse(map[string]any{})
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
}

func TestHomeworkService_ParseStatus(t *testing.T) {
	tests := []struct {
		name          string
		homework      any
		expected      string
		expectedError error
	}{
		{
			name:     "approved",
			homework: testutil.NewTestHomework("proj1", "approved"),
			expected: `Изменился статус проверки работы "proj1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			name:     "reviewing",
			homework: testutil.NewTestHomework("proj2", "reviewing"),
			expected: `Изменился статус проверки работы "proj2". Работа взята на проверку ревьюером.`,
		},
		{
			name:     "rejected",
			homework: testutil.NewTestHomework("proj3", "rejected"),
			expected: `Изменился статус проверки работы "proj3". Работа проверена: у ревьюера есть замечания.`,
		},
		{
			name:          "missing homework_name",
			homework:      map[string]any{"status": "approved"},
			expectedError: domain.ErrMissingField,
		},
		{
			name:          "missing status",
			homework:      map[string]any{"homework_name": "proj1"},
			expectedError: domain.ErrMissingField,
		},
		{
			name:          "unknown status",
			homework:      testutil.NewTestHomework("proj1", "lost"),
			expectedError: domain.ErrUnknownStatus,
		},
		{
			name:          "empty status",
			homework:      testutil.NewTestHomework("proj1", ""),
			expectedError: domain.ErrUnknownStatus,
		},
		{
			name:          "record is not an object",
			homework:      "proj1",
			expectedError: domain.ErrUnexpectedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHomeworkService(testutil.NewTestLogger())

			message, err := service.ParseStatus(tt.homework)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, message)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, message)
			}
		})
	}
}

func TestHomeworkService_ParseStatus_ErrorNamesField(t *testing.T) {
	service := NewHomeworkService(testutil.NewTestLogger())

	_, err := service.ParseStatus(map[string]any{"status": "approved"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "homework_name")

	_, err = service.ParseStatus(testutil.NewTestHomework("proj1", "lost"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lost")
}

func TestHomeworkService_ParseStatus_LogsWarning(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	service := NewHomeworkService(zap.New(core))

	_, err := service.ParseStatus(map[string]any{"homework_name": "proj1"})
	require.Error(t, err)

	warnings := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "status", warnings[0].ContextMap()["field"])
}

func TestHomeworkService_CurrentDate(t *testing.T) {
	tests := []struct {
		name     string
		answer   any
		expected int64
		found    bool
	}{
		{
			name:     "json number",
			answer:   map[string]any{"current_date": json.Number("1700000000")},
			expected: 1700000000,
			found:    true,
		},
		{
			name:     "float",
			answer:   map[string]any{"current_date": float64(1700000000)},
			expected: 1700000000,
			found:    true,
		},
		{
			name:   "fractional json number",
			answer: map[string]any{"current_date": json.Number("1700000000.5")},
			found:  false,
		},
		{
			name:   "string",
			answer: map[string]any{"current_date": "1700000000"},
			found:  false,
		},
		{
			name:   "missing",
			answer: map[string]any{"homeworks": []any{}},
			found:  false,
		},
		{
			name:   "not an object",
			answer: []any{},
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHomeworkService(testutil.NewTestLogger())

			date, ok := service.CurrentDate(tt.answer)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, date)
		})
	}
}
