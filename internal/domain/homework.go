package domain

import "fmt"

// Status is a review status reported by the homework API
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// JSON field names of the API payload
const (
	FieldHomeworks    = "homeworks"
	FieldCurrentDate  = "current_date"
	FieldHomeworkName = "homework_name"
	FieldStatus       = "status"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns display text for a status
func Verdict(status Status) (string, bool) {
	verdict, ok := verdicts[status]
	return verdict, ok
}

// StatusMessage formats the notification about a changed review status
func StatusMessage(homeworkName, verdict string) string {
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", homeworkName, verdict)
}
