// internal/domain/homework/status.go
package homework

import (
	"errors"
	"fmt"
)

// Status is the review verdict code attached to a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status to its human-readable verdict text.
// Loaded once, immutable for the process lifetime.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

var (
	// ErrUnknownStatus indicates a status code outside the fixed verdict set.
	ErrUnknownStatus = errors.New("unknown homework status")
	// ErrMissingName indicates the record carries no display name.
	ErrMissingName = errors.New("homework record has no homework_name")
)

// FormatStatusMessage composes the notification text for a status change.
// Pure function of the record and the verdict table.
func FormatStatusMessage(hw *Homework) (string, error) {
	verdict, ok := Verdicts[hw.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, hw.Status)
	}
	if hw.Name == "" {
		return "", ErrMissingName
	}
	return fmt.Sprintf("Changed status of review for %q. %s", hw.Name, verdict), nil
}
