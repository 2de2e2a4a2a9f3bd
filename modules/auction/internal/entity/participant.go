package entity

import (
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/samber/lo"
)

type ParticipantRole string

const (
	ParticipantRoleBidder   ParticipantRole = "bidder"
	ParticipantRoleBuyer    ParticipantRole = "buyer"
	ParticipantRoleSeller   ParticipantRole = "seller"
	ParticipantRoleCosigner ParticipantRole = "cosigner"
)

var ParticipantRoles = []ParticipantRole{
	ParticipantRoleBidder,
	ParticipantRoleBuyer,
	ParticipantRoleSeller,
	ParticipantRoleCosigner,
}

func (r ParticipantRole) IsValid() bool {
	return lo.Contains(ParticipantRoles, r)
}

// Sells reports whether the participant consigns lots.
func (r ParticipantRole) Sells() bool {
	return r == ParticipantRoleSeller || r == ParticipantRoleCosigner
}

type Participant struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Nickname  string          `json:"nickname"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Role      ParticipantRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (p Participant) Validate() error {
	var errList []error
	if strings.TrimSpace(p.Name) == "" {
		errList = append(errList, errors.New("name is required"))
	}
	if err := validateEmail(p.Email); err != nil {
		errList = append(errList, err)
	}
	if !p.Role.IsValid() {
		errList = append(errList, errors.Errorf("invalid role %q", p.Role))
	}
	if len(errList) > 0 {
		return errs.WithKind(errors.Join(errList...), errs.InvalidArgument)
	}
	return nil
}

// EventParticipant is a participant together with its enrollment in one event.
type EventParticipant struct {
	Participant
	Enrollment Enrollment `json:"enrollment"`
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.Errorf("invalid email %q", email)
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
