package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/student-service/internal/domain"
	"github.com/spec-kit/student-service/internal/events"
	"github.com/spec-kit/student-service/internal/repository"
	apperrors "github.com/spec-kit/student-service/pkg/util"
)

// StudentService coordinates student record workflows.
type StudentService struct {
	students   repository.StudentRepository
	dispatcher events.Dispatcher
}

// NewStudentService builds the service.
func NewStudentService(students repository.StudentRepository, dispatcher events.Dispatcher) *StudentService {
	return &StudentService{students: students, dispatcher: dispatcher}
}

// StudentInput describes a create or update payload.
type StudentInput struct {
	Name  string
	Email string
	Phone string
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

// GetByID returns a single student or a not-found error.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return nil, err
	}
	return student, nil
}

// SearchByName returns students whose name contains the given substring,
// case-insensitive.
func (s *StudentService) SearchByName(ctx context.Context, name string) ([]domain.Student, error) {
	return s.students.SearchByName(ctx, name)
}

// Create stores a new student. A duplicate email is a conflict and leaves
// existing records untouched.
func (s *StudentService) Create(ctx context.Context, actor string, input StudentInput) (*domain.Student, error) {
	if _, err := s.students.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already exists", map[string]any{"email": input.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	student := &domain.Student{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventStudentCreated, student, actor)
	return student, nil
}

// Update overwrites an existing student's fields.
func (s *StudentService) Update(ctx context.Context, actor string, id int64, input StudentInput) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return nil, err
	}

	student.Name = input.Name
	student.Email = input.Email
	student.Phone = input.Phone
	if err := s.students.Update(ctx, student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return nil, err
	}

	s.publish(ctx, events.EventStudentUpdated, student, actor)
	return student, nil
}

// Delete removes a student by id.
func (s *StudentService) Delete(ctx context.Context, actor string, id int64) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return err
	}

	if err := s.students.Delete(ctx, id); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	s.publish(ctx, events.EventStudentDeleted, student, actor)
	return nil
}

func (s *StudentService) publish(ctx context.Context, eventType events.EventType, student *domain.Student, actor string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		StudentID: student.ID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.StudentChangedPayload{
			Name:  student.Name,
			Email: student.Email,
		},
	})
}
