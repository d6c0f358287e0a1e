package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/student-service/internal/domain"
	"github.com/spec-kit/student-service/internal/events"
	apperrors "github.com/spec-kit/student-service/pkg/util"
)

type fakeStudentRepo struct {
	nextID   int64
	students map[int64]domain.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, students: map[int64]domain.Student{}}
}

func (f *fakeStudentRepo) List(_ context.Context) ([]domain.Student, error) {
	out := make([]domain.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &s, nil
}

func (f *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStudentRepo) SearchByName(_ context.Context, name string) ([]domain.Student, error) {
	out := make([]domain.Student, 0)
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(name)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) Create(_ context.Context, student *domain.Student) error {
	student.ID = f.nextID
	f.nextID++
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *domain.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.students, id)
	return nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (r *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	r.published = append(r.published, event)
	return nil
}

func (r *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	return domainErr.HTTPStatus
}

func TestStudentService_CreateAndGet(t *testing.T) {
	repo := newFakeStudentRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewStudentService(repo, dispatcher)

	created, err := svc.Create(context.Background(), "admin", StudentInput{
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventStudentCreated, dispatcher.published[0].Type)
	assert.Equal(t, "admin", dispatcher.published[0].Actor)
}

func TestStudentService_CreateDuplicateEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, &recordingDispatcher{})

	input := StudentInput{Name: "John Doe", Email: "john@example.com"}
	_, err := svc.Create(context.Background(), "admin", input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "admin", StudentInput{Name: "Other", Email: "john@example.com"})
	require.Error(t, err)
	assert.Equal(t, 409, statusOf(t, err))

	// The existing record is untouched.
	existing, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", existing.Name)
	assert.Len(t, repo.students, 1)
}

func TestStudentService_GetMissing(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), &recordingDispatcher{})

	_, err := svc.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))
}

func TestStudentService_Update(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, &recordingDispatcher{})

	created, err := svc.Create(context.Background(), "admin", StudentInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "admin", created.ID, StudentInput{
		Name:  "John Updated",
		Email: "john.updated@example.com",
		Phone: "987654321",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Updated", updated.Name)
	assert.Equal(t, "john.updated@example.com", updated.Email)

	_, err = svc.Update(context.Background(), "admin", 99, StudentInput{Name: "X", Email: "x@example.com"})
	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))
}

func TestStudentService_Delete(t *testing.T) {
	repo := newFakeStudentRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewStudentService(repo, dispatcher)

	created, err := svc.Create(context.Background(), "admin", StudentInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "admin", created.ID))
	assert.Empty(t, repo.students)

	err = svc.Delete(context.Background(), "admin", created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventStudentDeleted, dispatcher.published[1].Type)
}

func TestStudentService_SearchByName(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, &recordingDispatcher{})

	_, err := svc.Create(context.Background(), "admin", StudentInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "admin", StudentInput{Name: "Jane Roe", Email: "jane@example.com"})
	require.NoError(t, err)

	found, err := svc.SearchByName(context.Background(), "jOhN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "John Doe", found[0].Name)

	found, err = svc.SearchByName(context.Background(), "oe")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
