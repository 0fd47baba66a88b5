// internal/domain/homework/homework.go
package homework

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse indicates the upstream answer does not match the
// documented contract (the "homeworks" key is absent).
var ErrInvalidResponse = errors.New("response does not match the API contract")

// Homework is a single submission record as reported by the review API.
// It is read once per poll cycle and never stored.
type Homework struct {
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// StatusesResponse is the decoded body of the homework-statuses endpoint.
// Homeworks is a pointer so an absent key can be told apart from an empty
// list: the former is a contract violation, the latter a normal quiet cycle.
type StatusesResponse struct {
	Homeworks   *[]Homework `json:"homeworks"`
	CurrentDate int64       `json:"current_date"`
}

// LatestHomework validates the decoded response and extracts the most recent
// submission. The API prepends the newest record, so no sorting is done.
// A nil record with a nil error means there is nothing new this cycle.
func LatestHomework(resp *StatusesResponse) (*Homework, error) {
	if resp == nil || resp.Homeworks == nil {
		return nil, fmt.Errorf("%w: missing \"homeworks\" key", ErrInvalidResponse)
	}
	hws := *resp.Homeworks
	if len(hws) == 0 {
		return nil, nil
	}
	return &hws[0], nil
}
