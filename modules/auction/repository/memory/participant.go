package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

func (r *Repository) GetParticipant(ctx context.Context, id string) (*entity.Participant, error) {
	var (
		participant entity.Participant
		ok          bool
	)
	r.read(func(s *store) { participant, ok = s.participants[id] })
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "participant %s", id)
	}
	return &participant, nil
}

func (r *Repository) ListParticipants(ctx context.Context, role entity.ParticipantRole) ([]*entity.Participant, error) {
	participants := make([]*entity.Participant, 0)
	r.read(func(s *store) {
		for _, participant := range s.participants {
			if role != "" && participant.Role != role {
				continue
			}
			participant := participant
			participants = append(participants, &participant)
		}
	})
	slices.SortFunc(participants, func(a, b *entity.Participant) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return participants, nil
}

func (r *Repository) CreateParticipant(ctx context.Context, participant *entity.Participant) error {
	created := *participant
	return r.write(func(s *store) error {
		if _, ok := s.participants[created.ID]; ok {
			return errors.Wrapf(errs.Conflict, "participant %s already exists", created.ID)
		}
		s.participants[created.ID] = created
		return nil
	})
}

func (r *Repository) UpdateParticipant(ctx context.Context, participant *entity.Participant) error {
	updated := *participant
	return r.write(func(s *store) error {
		current, ok := s.participants[updated.ID]
		if !ok {
			return errors.Wrapf(errs.NotFound, "participant %s", updated.ID)
		}
		updated.CreatedAt = current.CreatedAt
		s.participants[updated.ID] = updated
		return nil
	})
}

func (r *Repository) GetEnrollment(ctx context.Context, eventID, participantID string) (*entity.Enrollment, error) {
	var (
		enrollment entity.Enrollment
		ok         bool
	)
	r.read(func(s *store) { enrollment, ok = s.enrollments[enrollmentKey{eventID, participantID}] })
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "enrollment of participant %s in event %s", participantID, eventID)
	}
	return &enrollment, nil
}

func (r *Repository) GetEnrollmentByPaddle(ctx context.Context, eventID, paddleNumber string) (*entity.Enrollment, error) {
	var found *entity.Enrollment
	r.read(func(s *store) {
		for key, enrollment := range s.enrollments {
			if key.eventID == eventID && enrollment.PaddleNumber == paddleNumber {
				enrollment := enrollment
				found = &enrollment
				return
			}
		}
	})
	if found == nil {
		return nil, errors.Wrapf(errs.NotFound, "paddle %s in event %s", paddleNumber, eventID)
	}
	return found, nil
}

func (r *Repository) listEnrollments(match func(key enrollmentKey) bool) []*entity.Enrollment {
	enrollments := make([]*entity.Enrollment, 0)
	r.read(func(s *store) {
		for key, enrollment := range s.enrollments {
			if match(key) {
				enrollment := enrollment
				enrollments = append(enrollments, &enrollment)
			}
		}
	})
	slices.SortFunc(enrollments, func(a, b *entity.Enrollment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if c := strings.Compare(a.EventID, b.EventID); c != 0 {
			return c
		}
		return strings.Compare(a.ParticipantID, b.ParticipantID)
	})
	return enrollments
}

func (r *Repository) ListEnrollmentsByEvent(ctx context.Context, eventID string) ([]*entity.Enrollment, error) {
	return r.listEnrollments(func(key enrollmentKey) bool { return key.eventID == eventID }), nil
}

func (r *Repository) ListEnrollmentsByParticipant(ctx context.Context, participantID string) ([]*entity.Enrollment, error) {
	return r.listEnrollments(func(key enrollmentKey) bool { return key.participantID == participantID }), nil
}

func (r *Repository) UpsertEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	upserted := *enrollment
	key := enrollmentKey{upserted.EventID, upserted.ParticipantID}
	return r.write(func(s *store) error {
		if upserted.PaddleNumber != "" {
			for other, e := range s.enrollments {
				if other.eventID == key.eventID && other != key && e.PaddleNumber == upserted.PaddleNumber {
					return errors.Wrapf(errs.Conflict, "paddle %s is already taken in event %s", upserted.PaddleNumber, key.eventID)
				}
			}
		}
		if current, ok := s.enrollments[key]; ok {
			upserted.CreatedAt = current.CreatedAt
		}
		s.enrollments[key] = upserted
		return nil
	})
}

func (r *Repository) ListPaddleNumbers(ctx context.Context, eventID string) ([]string, error) {
	numbers := make([]string, 0)
	r.read(func(s *store) {
		for key, enrollment := range s.enrollments {
			if key.eventID == eventID && enrollment.PaddleNumber != "" {
				numbers = append(numbers, enrollment.PaddleNumber)
			}
		}
	})
	slices.Sort(numbers)
	return numbers, nil
}
