package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/student-service/internal/domain"
)

// StudentRequest payload for create and update.
type StudentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate returns field-level problems with the payload.
func (r StudentRequest) Validate() map[string]any {
	problems := map[string]any{}
	if strings.TrimSpace(r.Name) == "" {
		problems["name"] = "name is required"
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		problems["email"] = "email is required"
	} else if !strings.Contains(email, "@") {
		problems["email"] = "email must be a valid address"
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// StudentResponse is the wire form of a student record.
type StudentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudentResponse maps the domain model.
func NewStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewStudentListResponse maps a slice of domain models.
func NewStudentListResponse(students []domain.Student) []StudentResponse {
	out := make([]StudentResponse, len(students))
	for i := range students {
		out[i] = NewStudentResponse(&students[i])
	}
	return out
}
