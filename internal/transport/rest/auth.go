package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bud-backend/internal/domain"
	authsvc "github.com/heartmarshall/bud-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	VerifyEmail(ctx context.Context, code string) (*authsvc.AuthResult, error)
	ResendVerification(ctx context.Context, email string) error
	LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error)
	LoginWithGoogle(ctx context.Context, input authsvc.GoogleLoginInput) (*authsvc.AuthResult, error)
	Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	Logout(ctx context.Context) error
}

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
}

// AuthHandler serves account and session endpoints.
type AuthHandler struct {
	auth    authService
	profile profileService
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth authService, profile profileService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, profile: profile, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type verifyEmailRequest struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	Code string `json:"code"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type verifyEmailResponse struct {
	Message string `json:"message"`
	authResponse
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.auth.Register(r.Context(), authsvc.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.Password2,
	}); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{
		Message: "User registered successfully. Please verify your email.",
	})
}

// VerifyEmail handles POST /api/auth/verify-email. The code may be sent as
// "token" or "code".
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	code := req.Token
	if code == "" {
		code = req.Code
	}
	if code == "" {
		respondError(w, r, h.log, domain.NewValidationError("token", "Token is required"))
		return
	}

	result, err := h.auth.VerifyEmail(r.Context(), code)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, verifyEmailResponse{
		Message:      "Email verified successfully.",
		authResponse: toAuthResponse(result),
	})
}

// ResendVerification handles POST /api/auth/resend-verification. The answer
// is the same whether or not the address is registered.
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.auth.ResendVerification(r.Context(), req.Email); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "If the account exists and is not verified, a new code has been sent.",
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.auth.LoginWithPassword(r.Context(), authsvc.LoginPasswordInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Google handles POST /api/auth/google.
func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.auth.LoginWithGoogle(r.Context(), authsvc.GoogleLoginInput{Code: req.Code})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.auth.Refresh(r.Context(), authsvc.RefreshInput{RefreshToken: req.Refresh})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.profile.GetProfile(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
