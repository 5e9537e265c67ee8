package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/hongminglow/skillbit-be/internal/credits"
	"github.com/hongminglow/skillbit-be/internal/http/respond"
	"github.com/hongminglow/skillbit-be/internal/resume"
	"github.com/hongminglow/skillbit-be/internal/storage"
)

// msgUploadFailed is the only failure message the upload endpoint exposes.
const msgUploadFailed = "Failed"

// ResumeHandler ingests PDF resumes and rewards the uploader.
type ResumeHandler struct {
	store     storage.UserStore
	extractor *resume.Extractor
	policy    credits.Policy
	maxBytes  int64
}

// NewResumeHandler constructs the handler. Request bodies larger than maxBytes fail.
func NewResumeHandler(store storage.UserStore, extractor *resume.Extractor, policy credits.Policy, maxBytes int64) *ResumeHandler {
	return &ResumeHandler{store: store, extractor: extractor, policy: policy, maxBytes: maxBytes}
}

// Register attaches the upload route to the mux.
func (h *ResumeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/upload-resume", h.handleUpload)
}

func (h *ResumeHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		log.Printf("upload resume: parse form: %v", err)
		respond.Error(w, http.StatusBadRequest, msgUploadFailed)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("resume")
	if err != nil {
		log.Printf("upload resume: read file: %v", err)
		respond.Error(w, http.StatusBadRequest, msgUploadFailed)
		return
	}
	defer file.Close()

	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		respond.Error(w, http.StatusBadRequest, msgUploadFailed)
		return
	}

	text, err := h.extractor.Extract(file)
	if err != nil {
		log.Printf("upload resume: extract for %s: %v", email, err)
		respond.Error(w, http.StatusUnprocessableEntity, msgUploadFailed)
		return
	}

	if err := h.store.SaveResume(r.Context(), email, text, h.policy.ResumeReward); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, msgUploadFailed)
			return
		}
		log.Printf("upload resume: save for %s: %v", email, err)
		respond.Error(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}
	respond.Success(w, "")
}
