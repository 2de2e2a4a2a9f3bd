package entity

import (
	"regexp"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/samber/lo"
)

type EnrollmentStatus string

const (
	EnrollmentStatusNotEnrolled EnrollmentStatus = "not_enrolled"
	EnrollmentStatusPending     EnrollmentStatus = "pending"
	EnrollmentStatusInvited     EnrollmentStatus = "invited"
	EnrollmentStatusApproved    EnrollmentStatus = "approved"
	EnrollmentStatusRejected    EnrollmentStatus = "rejected"
)

var EnrollmentStatuses = []EnrollmentStatus{
	EnrollmentStatusNotEnrolled,
	EnrollmentStatusPending,
	EnrollmentStatusInvited,
	EnrollmentStatusApproved,
	EnrollmentStatusRejected,
}

func (s EnrollmentStatus) IsValid() bool {
	return lo.Contains(EnrollmentStatuses, s)
}

// IsTerminal reports whether no transition leaves s.
func (s EnrollmentStatus) IsTerminal() bool {
	return s == EnrollmentStatusApproved || s == EnrollmentStatusRejected
}

func (s EnrollmentStatus) String() string {
	return string(s)
}

func (s EnrollmentStatus) transition(name string, to EnrollmentStatus, from ...EnrollmentStatus) (EnrollmentStatus, error) {
	if !lo.Contains(from, s) {
		return s, errors.Wrapf(errs.InvalidState, "cannot %s enrollment in status %s", name, s)
	}
	return to, nil
}

// Request is the participant asking to join: not_enrolled -> pending.
func (s EnrollmentStatus) Request() (EnrollmentStatus, error) {
	return s.transition("request", EnrollmentStatusPending, EnrollmentStatusNotEnrolled)
}

// Invite is the operator inviting a participant: not_enrolled -> invited.
func (s EnrollmentStatus) Invite() (EnrollmentStatus, error) {
	return s.transition("invite", EnrollmentStatusInvited, EnrollmentStatusNotEnrolled)
}

// Respond is the participant answering an invitation: invited -> approved | rejected.
func (s EnrollmentStatus) Respond(accept bool) (EnrollmentStatus, error) {
	return s.transition("respond to", lo.Ternary(accept, EnrollmentStatusApproved, EnrollmentStatusRejected), EnrollmentStatusInvited)
}

// Approve: pending | invited -> approved.
func (s EnrollmentStatus) Approve() (EnrollmentStatus, error) {
	return s.transition("approve", EnrollmentStatusApproved, EnrollmentStatusPending, EnrollmentStatusInvited)
}

// Reject: pending | invited -> rejected.
func (s EnrollmentStatus) Reject() (EnrollmentStatus, error) {
	return s.transition("reject", EnrollmentStatusRejected, EnrollmentStatusPending, EnrollmentStatusInvited)
}

// Enrollment is the relationship between a participant and an event.
// A missing record is equivalent to status not_enrolled.
type Enrollment struct {
	EventID       string           `json:"eventId"`
	ParticipantID string           `json:"participantId"`
	Status        EnrollmentStatus `json:"status"`
	PaddleNumber  string           `json:"paddleNumber,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// NewEnrollment returns the implicit not_enrolled enrollment.
func NewEnrollment(eventID, participantID string) Enrollment {
	return Enrollment{
		EventID:       eventID,
		ParticipantID: participantID,
		Status:        EnrollmentStatusNotEnrolled,
	}
}

var paddleNumberPattern = regexp.MustCompile(`^[0-9]{1,6}$`)

func ValidatePaddleNumber(number string) error {
	if !paddleNumberPattern.MatchString(number) {
		return errors.Wrapf(errs.InvalidArgument, "paddle number %q must be 1 to 6 digits", number)
	}
	return nil
}

// AssignPaddle sets the paddle number. A paddle number never changes once assigned;
// assigning the same number again is a no-op.
func (e *Enrollment) AssignPaddle(number string) error {
	if err := ValidatePaddleNumber(number); err != nil {
		return err
	}
	if e.PaddleNumber != "" && e.PaddleNumber != number {
		return errors.Wrapf(errs.InvalidState, "paddle number %s is already assigned", e.PaddleNumber)
	}
	e.PaddleNumber = number
	return nil
}

const (
	minGeneratedPaddle = 100
	maxGeneratedPaddle = 999
)

// GeneratePaddleNumber picks a free 3-digit paddle number. intn must return a value in [0, n).
func GeneratePaddleNumber(taken []string, intn func(n int) int) (string, error) {
	used := lo.SliceToMap(taken, func(n string) (string, struct{}) { return n, struct{}{} })
	free := make([]string, 0, maxGeneratedPaddle-minGeneratedPaddle+1)
	for n := minGeneratedPaddle; n <= maxGeneratedPaddle; n++ {
		candidate := strconv.Itoa(n)
		if _, ok := used[candidate]; !ok {
			free = append(free, candidate)
		}
	}
	if len(free) == 0 {
		return "", errors.Wrap(errs.Conflict, "no free paddle numbers left")
	}
	return free[intn(len(free))], nil
}
