package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Code é o vocabulário fixo de códigos de erro emitidos por um provedor
// de identidade, independente da implementação
type Code string

const (
	CodeDuplicateAccount Code = "duplicate-account"
	CodeWeakCredential   Code = "weak-credential"
	CodeNotFound         Code = "not-found"
	CodeWrongCredential  Code = "wrong-credential"
	CodeMalformedEmail   Code = "malformed-email"
	CodeDisabledAccount  Code = "disabled-account"
	CodeRateLimited      Code = "rate-limited"
	CodeNetworkFailure   Code = "network-failure"
	CodePopupCancelled   Code = "popup-cancelled"
	CodeUnknown          Code = "unknown"
)

// Error é um erro do provedor de identidade com o código do vocabulário fixo
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError cria um erro de provedor com o código informado
func NewError(code Code, err error) *Error {
	return &Error{Code: code, Err: err}
}

// CodeOf extrai o código de provedor de um erro; CodeUnknown quando não houver
func CodeOf(err error) Code {
	var provErr *Error
	if errors.As(err, &provErr) {
		return provErr.Code
	}
	return CodeUnknown
}

// Provider é o colaborador externo de autenticação. Toda mudança de
// identidade (inclusive a inicial) é empurrada aos assinantes registrados
// via Subscribe; o callback recebe nil quando não há usuário autenticado.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	SignUp(ctx context.Context, email, password, displayName string) (*domain.User, error)
	SignInWithPopup(ctx context.Context) (*domain.User, error)
	SignOut(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error

	// Subscribe registra um callback de mudança de identidade e o invoca
	// imediatamente com o estado atual. Retorna a função de cancelamento.
	Subscribe(fn func(user *domain.User)) (unsubscribe func())

	CurrentUser() *domain.User

	// IssueToken e ValidateToken cuidam do token de sessão da API
	IssueToken(user *domain.User) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}
