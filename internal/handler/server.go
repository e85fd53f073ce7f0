// Package handler implements the HTTP handlers for the Tutor Catalog API.
// Handlers are methods on Server that return an error; Server.wrap renders
// every failure through domain.Kind.Status, so no handler picks a status
// code for an error by itself.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
	"github.com/pkordes/tutor-catalog/backend/openapi"
)

// TutorServicer defines the business operations the tutor handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types".
type TutorServicer interface {
	List(ctx context.Context) ([]domain.Tutor, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tutor, error)
	Create(ctx context.Context, in domain.CreateTutor) (domain.Tutor, error)
	Update(ctx context.Context, id uuid.UUID, in domain.CreateTutor) (domain.Tutor, error)
	PartialUpdate(ctx context.Context, id uuid.UUID, patch domain.TutorPatch) (domain.Tutor, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (domain.Tutor, error)
}

// CourseServicer defines the business operations the course handlers depend on.
type CourseServicer interface {
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]domain.Course, error)
	Get(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error)
	Create(ctx context.Context, in domain.CreateCourse) (domain.Course, error)
	Update(ctx context.Context, tutorID, courseID uuid.UUID, fields domain.CourseFields) (domain.Course, error)
	SoftDelete(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error)
}

// Server holds the dependencies shared by every handler.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	log      *slog.Logger
	tutors   TutorServicer
	courses  CourseServicer
	validate *validator.Validate
	health   *healthCounter
}

// NewServer constructs the Server with all its dependencies.
// healthMessage is the prefix of the /health response message.
func NewServer(log *slog.Logger, tutors TutorServicer, courses CourseServicer, healthMessage string) *Server {
	return &Server{
		log:      log,
		tutors:   tutors,
		courses:  courses,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		health:   &healthCounter{message: healthMessage},
	}
}

// Routes returns a chi router with every API route registered.
// Cross-cutting middleware (logging, CORS, body limit) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.wrap(s.getHealth))
	r.Get("/openapi.yaml", serveDocument)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tutors", func(r chi.Router) {
			r.Get("/", s.wrap(s.listTutors))
			r.Post("/", s.wrap(s.createTutor))
			r.Route("/{tutor_id}", func(r chi.Router) {
				r.Get("/", s.wrap(s.getTutor))
				r.Put("/", s.wrap(s.updateTutor))
				r.Patch("/", s.wrap(s.patchTutor))
				r.Delete("/", s.wrap(s.deleteTutor))
			})
		})
		r.Route("/courses", func(r chi.Router) {
			r.Post("/", s.wrap(s.createCourse))
			r.Get("/{tutor_id}", s.wrap(s.listCourses))
			r.Get("/{tutor_id}/{course_id}", s.wrap(s.getCourse))
			r.Put("/{tutor_id}/{course_id}", s.wrap(s.updateCourse))
			r.Delete("/{tutor_id}/{course_id}", s.wrap(s.deleteCourse))
		})
	})

	r.NotFound(s.wrap(func(_ http.ResponseWriter, _ *http.Request) error {
		return domain.NotFound("Requested resource not found")
	}))
	return r
}

// handlerFunc is an http.HandlerFunc that reports failure by returning an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// wrap adapts a handlerFunc to http.HandlerFunc, rendering any returned error.
func (s *Server) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	}
}

// serveDocument handles GET /openapi.yaml.
func serveDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapi.Document)
}
