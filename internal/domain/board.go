package domain

import "fmt"

// Status is the moderation state of a board post. Every status is reachable
// from every other one; there is no terminal state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus rejects anything outside the closed status set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status: %q", s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// DefaultAuthor is used when a submission leaves the author field empty.
const DefaultAuthor = "Anónimo"

// BoardPost is a row of the idea board. Tags are stored as the raw
// comma-separated string and only split in view shaping.
type BoardPost struct {
	Id        string
	CreatedAt int64 // unix milliseconds, insertion order key
	Title     string
	Body      string
	Author    string
	Tags      string
	ImagePath string // bare stored filename, expanded to /uploads/<name> in views
	Status    Status
}
