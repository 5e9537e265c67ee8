package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/hongminglow/skillbit-be/internal/http/respond"
	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/models/dto"
	"github.com/hongminglow/skillbit-be/internal/storage"
)

// JobsHandler posts and searches job listings.
type JobsHandler struct {
	store storage.JobStore
	now   func() time.Time
}

// NewJobsHandler constructs the handler. Posting dates come from now in server-local time.
func NewJobsHandler(store storage.JobStore, now func() time.Time) *JobsHandler {
	return &JobsHandler{store: store, now: now}
}

// Register attaches job routes to the mux.
func (h *JobsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/jobs", h.handleJobs)
}

func (h *JobsHandler) handleJobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *JobsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	jobs, err := h.store.ListJobs(r.Context(), search)
	if err != nil {
		log.Printf("list jobs error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	respond.JSON(w, http.StatusOK, jobs)
}

func (h *JobsHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	var req dto.JobPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	job := storage.NewJob{
		Title:          *req.Title,
		Company:        *req.Company,
		Location:       *req.Location,
		Salary:         *req.Salary,
		Description:    *req.Description,
		Experience:     *req.Experience,
		Skills:         *req.Skills,
		ReferralBonus:  *req.ReferralBonus,
		RecruiterEmail: *req.RecruiterEmail,
		PostedDate:     models.Today(h.now()),
	}
	if _, err := h.store.CreateJob(r.Context(), job); err != nil {
		log.Printf("create job error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create job")
		return
	}
	respond.Success(w, "")
}
