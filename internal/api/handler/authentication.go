package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

// categoryStatusMap traduz a categoria de falha de autenticação para o
// status HTTP da resposta. O corpo é sempre o AuthResult completo.
var categoryStatusMap = map[domain.ErrorCategory]int{
	domain.CategoryDuplicateAccount: http.StatusConflict,
	domain.CategoryWeakCredential:   http.StatusBadRequest,
	domain.CategoryNotFound:         http.StatusNotFound,
	domain.CategoryWrongCredential:  http.StatusUnauthorized,
	domain.CategoryMalformedEmail:   http.StatusBadRequest,
	domain.CategoryDisabled:         http.StatusForbidden,
	domain.CategoryRateLimited:      http.StatusTooManyRequests,
	domain.CategoryNetwork:          http.StatusBadGateway,
	domain.CategoryUnknown:          http.StatusInternalServerError,
}

func writeAuthResult(w http.ResponseWriter, result domain.AuthResult) {
	status := http.StatusOK
	if !result.Success {
		if mapped, ok := categoryStatusMap[result.Category]; ok {
			status = mapped
		} else {
			status = http.StatusInternalServerError
		}
	}

	writeJSON(w, status, result)
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "E-mail e senha são obrigatórios", nil)
			return
		}

		writeAuthResult(w, service.Login(r.Context(), req.Email, req.Password))
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "E-mail e senha são obrigatórios", nil)
			return
		}

		writeAuthResult(w, service.Signup(r.Context(), req.Email, req.Password, req.DisplayName))
	}
}

// LoginWithGoogle realiza o fluxo federado. No provedor local o fluxo
// autentica a conta de demonstração configurada.
func LoginWithGoogle(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeAuthResult(w, service.LoginWithProvider(r.Context()))
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeAuthResult(w, service.Logout(r.Context()))
	}
}

func PasswordReset(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PasswordResetRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Email == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "E-mail é obrigatório", nil)
			return
		}

		writeAuthResult(w, service.RequestPasswordReset(r.Context(), req.Email))
	}
}

// GetSession retorna o snapshot corrente da sessão
func GetSession(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Session())
	}
}
