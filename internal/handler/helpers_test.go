package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
	"github.com/pkordes/tutor-catalog/backend/internal/handler"
)

// mockTutorServicer is a test double for handler.TutorServicer.
// Set only the method fields your test needs.
type mockTutorServicer struct {
	list          func(ctx context.Context) ([]domain.Tutor, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.Tutor, error)
	create        func(ctx context.Context, in domain.CreateTutor) (domain.Tutor, error)
	update        func(ctx context.Context, id uuid.UUID, in domain.CreateTutor) (domain.Tutor, error)
	partialUpdate func(ctx context.Context, id uuid.UUID, patch domain.TutorPatch) (domain.Tutor, error)
	softDelete    func(ctx context.Context, id uuid.UUID) (domain.Tutor, error)
}

func (m *mockTutorServicer) List(ctx context.Context) ([]domain.Tutor, error) {
	return m.list(ctx)
}
func (m *mockTutorServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Tutor, error) {
	return m.getByID(ctx, id)
}
func (m *mockTutorServicer) Create(ctx context.Context, in domain.CreateTutor) (domain.Tutor, error) {
	return m.create(ctx, in)
}
func (m *mockTutorServicer) Update(ctx context.Context, id uuid.UUID, in domain.CreateTutor) (domain.Tutor, error) {
	return m.update(ctx, id, in)
}
func (m *mockTutorServicer) PartialUpdate(ctx context.Context, id uuid.UUID, patch domain.TutorPatch) (domain.Tutor, error) {
	return m.partialUpdate(ctx, id, patch)
}
func (m *mockTutorServicer) SoftDelete(ctx context.Context, id uuid.UUID) (domain.Tutor, error) {
	return m.softDelete(ctx, id)
}

// mockCourseServicer is a test double for handler.CourseServicer.
type mockCourseServicer struct {
	listByTutor func(ctx context.Context, tutorID uuid.UUID) ([]domain.Course, error)
	get         func(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error)
	create      func(ctx context.Context, in domain.CreateCourse) (domain.Course, error)
	update      func(ctx context.Context, tutorID, courseID uuid.UUID, f domain.CourseFields) (domain.Course, error)
	softDelete  func(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error)
}

func (m *mockCourseServicer) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]domain.Course, error) {
	return m.listByTutor(ctx, tutorID)
}
func (m *mockCourseServicer) Get(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error) {
	return m.get(ctx, tutorID, courseID)
}
func (m *mockCourseServicer) Create(ctx context.Context, in domain.CreateCourse) (domain.Course, error) {
	return m.create(ctx, in)
}
func (m *mockCourseServicer) Update(ctx context.Context, tutorID, courseID uuid.UUID, f domain.CourseFields) (domain.Course, error) {
	return m.update(ctx, tutorID, courseID, f)
}
func (m *mockCourseServicer) SoftDelete(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error) {
	return m.softDelete(ctx, tutorID, courseID)
}

// compile-time checks.
var (
	_ handler.TutorServicer  = (*mockTutorServicer)(nil)
	_ handler.CourseServicer = (*mockCourseServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

const testHealthMessage = "I'm good, you have asked already"

// newHTTPHandler wires a Server with the given mocks into its chi router,
// logging into logs when it is non-nil.
func newHTTPHandler(tutors handler.TutorServicer, courses handler.CourseServicer, logs io.Writer) http.Handler {
	if logs == nil {
		logs = io.Discard
	}
	log := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return handler.NewServer(log, tutors, courses, testHealthMessage).Routes()
}

// do sends a request with an optional raw JSON body and returns the recorder.
func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonString(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return buf.String()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}
