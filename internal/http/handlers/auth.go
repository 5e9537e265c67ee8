package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hongminglow/skillbit-be/internal/auth"
	"github.com/hongminglow/skillbit-be/internal/credits"
	"github.com/hongminglow/skillbit-be/internal/http/respond"
	"github.com/hongminglow/skillbit-be/internal/models"
	"github.com/hongminglow/skillbit-be/internal/models/dto"
	"github.com/hongminglow/skillbit-be/internal/storage"
)

const (
	msgEmailExists        = "Email exists"
	msgInvalidCredentials = "Invalid Credentials"
)

// AuthHandler owns the signup/login endpoints.
type AuthHandler struct {
	store  storage.UserStore
	hasher auth.PasswordHasher
	tokens *auth.TokenManager
	policy credits.Policy
	// dummyHash is verified against when the email is unknown so both login failures cost one hash check.
	dummyHash string
}

// NewAuthHandler constructs the handler. tokens may be nil, in which case login issues no session token.
func NewAuthHandler(store storage.UserStore, hasher auth.PasswordHasher, tokens *auth.TokenManager, policy credits.Policy) *AuthHandler {
	dummyHash, err := hasher.Hash("skillbit-unknown-account")
	if err != nil {
		log.Printf("auth: prepare dummy hash: %v", err)
	}
	return &AuthHandler{store: store, hasher: hasher, tokens: tokens, policy: policy, dummyHash: dummyHash}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/signup", h.handleSignup)
	mux.HandleFunc("/api/login", h.handleLogin)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	passwordHash, err := h.hasher.Hash(*req.Password)
	if err != nil {
		log.Printf("hash password error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Email:        *req.Email,
		PasswordHash: passwordHash,
		Role:         *req.Role,
		Name:         *req.Name,
		Tokens:       h.policy.SignupGrant,
		Company:      req.Company,
		Designation:  req.Designation,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusConflict, msgEmailExists)
		default:
			log.Printf("create user error: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	respond.Success(w, "")
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.store.FindByEmail(r.Context(), *req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.hasher.Verify(*req.Password, h.dummyHash)
			respond.Error(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		log.Printf("login failed: error fetching user %s: %v", *req.Email, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !h.hasher.Verify(*req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	resp := dto.LoginResponse{Status: respond.StatusSuccess, User: user}
	if h.tokens != nil {
		token, err := h.tokens.Generate(user)
		if err != nil {
			log.Printf("generate token error: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to generate token")
			return
		}
		resp.Token = token
	}
	respond.JSON(w, http.StatusOK, resp)
}
