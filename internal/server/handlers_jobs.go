package server

import (
	"encoding/json"
	"net/http"

	"github.com/titanhire/titanhire/internal/generator"
	"github.com/titanhire/titanhire/internal/jobs"
	"github.com/titanhire/titanhire/internal/types"
)

// handleListJobs returns the session's job collection, newest-first.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	list := s.session.Jobs()
	if list == nil {
		list = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, list)
}

// handleCreateJob creates a fresh draft job and makes it the active
// selection.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	job := s.session.CreateJob(r.Context())
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleGetJob returns one job by id.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	job, ok := s.session.Job(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob removes one job by id. Deleting an unknown id is a
// no-op and still returns 204.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.session.DeleteJob(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateJob swaps the full job record, covering direct input edits
// made outside a stage completion. An unmatched id is a silent no-op, as
// in the session layer.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var job types.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if job.ID == "" {
		job.ID = id
	}
	if job.ID != id {
		s.errorResponse(w, http.StatusBadRequest, "job id does not match path")
		return
	}

	if err := s.session.ReplaceJob(r.Context(), job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// validationResponse is the 400 body for failed stage-input validation.
// It carries every violated constraint so a form can show the full set.
type validationResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// handleCompleteStage runs the full completion flow for one stage:
// validate inputs, generate the artifact bundle, apply the lifecycle
// transform, swap the record into the session. Validation and generation
// failures leave the job untouched.
func (s *Server) handleCompleteStage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	stage := types.Stage(r.PathValue("stage"))
	if !stage.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "unknown stage")
		return
	}

	job, ok := s.session.Job(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	var in types.StageInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in.Stage = stage // the path segment is authoritative

	if result := jobs.ValidateStageInputs(&in); !result.IsValid {
		s.jsonResponse(w, http.StatusBadRequest, validationResponse{
			Error:  "stage inputs are invalid",
			Errors: result.Errors,
		})
		return
	}

	out, err := s.generator.Generate(r.Context(), &in, generator.JobContext{
		Title:      job.Title,
		Department: job.Department,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	updated, err := jobs.CompleteStage(job, stage, &in, out)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.session.ReplaceJob(r.Context(), updated); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}
