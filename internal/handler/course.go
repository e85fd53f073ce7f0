package handler

import (
	"net/http"

	"github.com/google/uuid"
)

// courseKeys binds the (tutor_id, course_id) pair every single-course route carries.
func courseKeys(r *http.Request) (tutorID, courseID uuid.UUID, err error) {
	if tutorID, err = pathUUID(r, "tutor_id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if courseID, err = pathUUID(r, "course_id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return tutorID, courseID, nil
}

// listCourses handles GET /api/v1/courses/{tutor_id}.
// An unknown tutor yields 200 with an empty array.
func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) error {
	tutorID, err := pathUUID(r, "tutor_id")
	if err != nil {
		return err
	}
	courses, err := s.courses.ListByTutor(r.Context(), tutorID)
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, courses)
	return nil
}

// getCourse handles GET /api/v1/courses/{tutor_id}/{course_id}.
func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) error {
	tutorID, courseID, err := courseKeys(r)
	if err != nil {
		return err
	}
	course, err := s.courses.Get(r.Context(), tutorID, courseID)
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, course)
	return nil
}

// createCourse handles POST /api/v1/courses.
func (s *Server) createCourse(w http.ResponseWriter, r *http.Request) error {
	var body createCourseRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}
	created, err := s.courses.Create(r.Context(), body.toDomain())
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusCreated, created)
	return nil
}

// updateCourse handles PUT /api/v1/courses/{tutor_id}/{course_id}.
// Every descriptive field is replaced; an omitted optional field is cleared.
func (s *Server) updateCourse(w http.ResponseWriter, r *http.Request) error {
	tutorID, courseID, err := courseKeys(r)
	if err != nil {
		return err
	}
	var body courseFieldsRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}
	updated, err := s.courses.Update(r.Context(), tutorID, courseID, body.toDomain())
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, updated)
	return nil
}

// deleteCourse handles DELETE /api/v1/courses/{tutor_id}/{course_id}.
func (s *Server) deleteCourse(w http.ResponseWriter, r *http.Request) error {
	tutorID, courseID, err := courseKeys(r)
	if err != nil {
		return err
	}
	deleted, err := s.courses.SoftDelete(r.Context(), tutorID, courseID)
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, deleted)
	return nil
}
