package handler

import (
	"fmt"
	"net/http"
	"sync"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// healthCounter counts health checks for the lifetime of the process.
type healthCounter struct {
	mu      sync.Mutex
	message string
	visits  int
}

// next returns the number of earlier checks and records this one.
func (c *healthCounter) next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.visits
	c.visits++
	return n
}

// getHealth handles GET /health.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) error {
	n := s.health.next()
	s.writeJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: fmt.Sprintf("%s %d times", s.health.message, n),
	})
	return nil
}
