// internal/domain/homework/status.go
package homework

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status to the text shown to the student.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

const (
	NoNewStatuses        = "Нет новых статусов работ."
	UnknownStatusVerdict = "Неизвестный статус работы"
	FailurePrefix        = "Сбой в работе программы: "
)

// Verdict looks up the text for a status code, falling back to UnknownStatusVerdict.
func Verdict(output string) string {
	if v, ok := Verdicts[Status(output)]; ok {
		return v
	}
	return UnknownStatusVerdict
}
