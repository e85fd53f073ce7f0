package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
)

const invalidJSONMessage = "Please provide a valid JSON input"

// tutorRequest is the body of POST /tutors and PUT /tutors/{tutor_id}.
// Pointers distinguish a missing field from an empty string.
type tutorRequest struct {
	Name    *string `json:"name" validate:"required"`
	PicURL  *string `json:"pic_url" validate:"required"`
	Profile *string `json:"profile" validate:"required"`
}

func (b tutorRequest) toDomain() domain.CreateTutor {
	return domain.CreateTutor{Name: *b.Name, PicURL: *b.PicURL, Profile: *b.Profile}
}

// tutorPatchRequest is the body of PATCH /tutors/{tutor_id}.
// An absent field keeps its stored value; a present name must not be empty.
type tutorPatchRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	PicURL  *string `json:"pic_url"`
	Profile *string `json:"profile"`
}

func (b tutorPatchRequest) toDomain() domain.TutorPatch {
	return domain.TutorPatch{Name: b.Name, PicURL: b.PicURL, Profile: b.Profile}
}

// courseFieldsRequest holds the descriptive course fields shared by
// create and update.
type courseFieldsRequest struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description"`
	Format      *string `json:"format"`
	Structure   *string `json:"structure"`
	Duration    *string `json:"duration"`
	Price       *int32  `json:"price" validate:"omitempty,gte=0"`
	Language    *string `json:"language"`
	Level       *string `json:"level"`
}

func (b courseFieldsRequest) toDomain() domain.CourseFields {
	return domain.CourseFields{
		Name:        *b.Name,
		Description: b.Description,
		Format:      b.Format,
		Structure:   b.Structure,
		Duration:    b.Duration,
		Price:       b.Price,
		Language:    b.Language,
		Level:       b.Level,
	}
}

// createCourseRequest is the body of POST /courses.
type createCourseRequest struct {
	TutorID *openapi_types.UUID `json:"tutor_id" validate:"required"`
	courseFieldsRequest
}

func (b createCourseRequest) toDomain() domain.CreateCourse {
	return domain.CreateCourse{TutorID: *b.TutorID, CourseFields: b.courseFieldsRequest.toDomain()}
}

// decodeJSON reads the request body into dst and validates it.
// An empty or malformed body is InvalidInput; a read failure is TransportFailure.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.InvalidInput(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		}
		return domain.TransportFailure(fmt.Errorf("read body: %w", err))
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return domain.InvalidInput(invalidJSONMessage)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.InvalidInput(invalidJSONMessage)
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError turns validator output into an InvalidInput naming the
// first offending field by its JSON name.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.InvalidInput(invalidJSONMessage)
	}
	fe := verrs[0]
	field := jsonFieldNames[fe.Field()]
	if field == "" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return domain.InvalidInput(field + " is required")
	case "min":
		return domain.InvalidInput(field + " must not be empty")
	case "gte":
		return domain.InvalidInput(field + " must not be negative")
	default:
		return domain.InvalidInput(field + " is invalid")
	}
}

var jsonFieldNames = map[string]string{
	"Name":    "name",
	"PicURL":  "pic_url",
	"Profile": "profile",
	"TutorID": "tutor_id",
	"Price":   "price",
}

// pathUUID binds a UUID path parameter registered on the chi route.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, domain.InvalidInput(fmt.Sprintf("Invalid format for parameter %s", name))
	}
	return id, nil
}
