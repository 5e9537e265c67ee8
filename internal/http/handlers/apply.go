package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hongminglow/skillbit-be/internal/credits"
	"github.com/hongminglow/skillbit-be/internal/http/respond"
	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/models/dto"
	"github.com/hongminglow/skillbit-be/internal/scoring"
	"github.com/hongminglow/skillbit-be/internal/storage"
)

const (
	msgApplicationSent     = "Application Sent!"
	msgInsufficientCredits = "Insufficient Credits"
)

// ApplyHandler spends tokens to apply for a job.
type ApplyHandler struct {
	store  storage.ApplicationStore
	scorer scoring.Scorer
	policy credits.Policy
	now    func() time.Time
}

// NewApplyHandler constructs the handler.
func NewApplyHandler(store storage.ApplicationStore, scorer scoring.Scorer, policy credits.Policy, now func() time.Time) *ApplyHandler {
	return &ApplyHandler{store: store, scorer: scorer, policy: policy, now: now}
}

// Register attaches the apply route to the mux.
func (h *ApplyHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/apply", h.handleApply)
}

func (h *ApplyHandler) handleApply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	email := strings.TrimSpace(r.FormValue("user_email"))
	rawJobID := strings.TrimSpace(r.FormValue("job_id"))
	if email == "" || rawJobID == "" {
		respond.Error(w, http.StatusBadRequest, "user_email and job_id are required")
		return
	}
	jobID, err := strconv.ParseInt(rawJobID, 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "job_id must be an integer")
		return
	}

	app, err := h.store.Apply(r.Context(), storage.ApplyParams{
		JobID:       jobID,
		UserEmail:   email,
		ReferralFee: h.policy.ReferralFee,
		Date:        models.Today(h.now()),
		AIScore:     h.scorer.Score(),
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientCredits):
			respond.Error(w, http.StatusPaymentRequired, msgInsufficientCredits)
		case errors.Is(err, storage.ErrJobNotFound):
			respond.Error(w, http.StatusNotFound, "Job not found")
		case errors.Is(err, storage.ErrUserNotFound):
			respond.Error(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("apply error: user=%s job=%d: %v", email, jobID, err)
			respond.Error(w, http.StatusInternalServerError, "failed to apply")
		}
		return
	}

	respond.JSON(w, http.StatusOK, dto.ApplyResponse{
		Status:  respond.StatusSuccess,
		Message: msgApplicationSent,
		AIScore: app.AIScore,
	})
}
