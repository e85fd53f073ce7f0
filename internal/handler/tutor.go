package handler

import (
	"net/http"
)

// listTutors handles GET /api/v1/tutors.
func (s *Server) listTutors(w http.ResponseWriter, r *http.Request) error {
	tutors, err := s.tutors.List(r.Context())
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, tutors)
	return nil
}

// getTutor handles GET /api/v1/tutors/{tutor_id}.
func (s *Server) getTutor(w http.ResponseWriter, r *http.Request) error {
	id, err := pathUUID(r, "tutor_id")
	if err != nil {
		return err
	}
	tutor, err := s.tutors.GetByID(r.Context(), id)
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, tutor)
	return nil
}

// createTutor handles POST /api/v1/tutors.
func (s *Server) createTutor(w http.ResponseWriter, r *http.Request) error {
	var body tutorRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}
	created, err := s.tutors.Create(r.Context(), body.toDomain())
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusCreated, created)
	return nil
}

// updateTutor handles PUT /api/v1/tutors/{tutor_id}.
func (s *Server) updateTutor(w http.ResponseWriter, r *http.Request) error {
	id, err := pathUUID(r, "tutor_id")
	if err != nil {
		return err
	}
	var body tutorRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}
	updated, err := s.tutors.Update(r.Context(), id, body.toDomain())
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, updated)
	return nil
}

// patchTutor handles PATCH /api/v1/tutors/{tutor_id}.
func (s *Server) patchTutor(w http.ResponseWriter, r *http.Request) error {
	id, err := pathUUID(r, "tutor_id")
	if err != nil {
		return err
	}
	var body tutorPatchRequest
	if err := s.decodeJSON(r, &body); err != nil {
		return err
	}
	updated, err := s.tutors.PartialUpdate(r.Context(), id, body.toDomain())
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, updated)
	return nil
}

// deleteTutor handles DELETE /api/v1/tutors/{tutor_id}.
// The response is the deleted row; deleted_at is never serialised.
func (s *Server) deleteTutor(w http.ResponseWriter, r *http.Request) error {
	id, err := pathUUID(r, "tutor_id")
	if err != nil {
		return err
	}
	deleted, err := s.tutors.SoftDelete(r.Context(), id)
	if err != nil {
		return err
	}
	s.writeJSON(w, r, http.StatusOK, deleted)
	return nil
}
