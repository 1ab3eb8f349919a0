package service

import (
	"encoding/json"
	"fmt"

	"homeworkbot/internal/domain"

	"go.uber.org/zap"
)

// HomeworkService validates API answers and turns homework records into messages
type HomeworkService struct {
	logger *zap.Logger
}

// NewHomeworkService creates a new homework service
func NewHomeworkService(logger *zap.Logger) *HomeworkService {
	return &HomeworkService{logger: logger}
}

// CheckResponse verifies the answer shape and returns its homework list (possibly empty)
func (s *HomeworkService) CheckResponse(answer any) ([]any, error) {
	payload, ok := answer.(map[string]any)
	if !ok {
		s.logger.Error("API answer is not an object", zap.String("type", fmt.Sprintf("%T", answer)))
		return nil, fmt.Errorf("%w: ответ API не является словарём", domain.ErrUnexpectedType)
	}

	raw, exists := payload[domain.FieldHomeworks]
	if !exists {
		s.logger.Error("API answer has no homeworks field")
		return nil, fmt.Errorf("%w: в ответе API нет ключа %s", domain.ErrUnexpectedType, domain.FieldHomeworks)
	}

	homeworks, ok := raw.([]any)
	if !ok {
		s.logger.Error("API homeworks field is not a list", zap.String("type", fmt.Sprintf("%T", raw)))
		return nil, fmt.Errorf("%w: %s не является списком", domain.ErrUnexpectedType, domain.FieldHomeworks)
	}

	return homeworks, nil
}

// ParseStatus builds the status change message for one homework record
func (s *HomeworkService) ParseStatus(homework any) (string, error) {
	record, ok := homework.(map[string]any)
	if !ok {
		s.logger.Warn("Homework record is not an object", zap.String("type", fmt.Sprintf("%T", homework)))
		return "", fmt.Errorf("%w: домашняя работа не является словарём", domain.ErrUnexpectedType)
	}

	for _, key := range []string{domain.FieldHomeworkName, domain.FieldStatus} {
		if _, exists := record[key]; !exists {
			s.logger.Warn("Homework record field is missing", zap.String("field", key))
			return "", fmt.Errorf("%w: отсутствует %s домашней работы", domain.ErrMissingField, key)
		}
	}

	name := fmt.Sprint(record[domain.FieldHomeworkName])
	status := fmt.Sprint(record[domain.FieldStatus])

	verdict, ok := domain.Verdict(domain.Status(status))
	if !ok {
		s.logger.Warn("Unknown homework status",
			zap.String("homework", name),
			zap.String("status", status),
		)
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownStatus, status)
	}

	return domain.StatusMessage(name, verdict), nil
}

// CurrentDate extracts current_date from a checked answer
func (s *HomeworkService) CurrentDate(answer any) (int64, bool) {
	payload, ok := answer.(map[string]any)
	if !ok {
		return 0, false
	}

	switch value := payload[domain.FieldCurrentDate].(type) {
	case json.Number:
		date, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return date, true
	case float64:
		return int64(value), true
	case int64:
		return value, true
	case int:
		return int64(value), true
	default:
		return 0, false
	}
}
