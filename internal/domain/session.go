package domain

// SessionStatus representa o estado do ciclo de vida de autenticação
type SessionStatus string

const (
	// StatusUnknown é o estado antes do primeiro callback do provedor de identidade
	StatusUnknown        SessionStatus = "unknown"
	StatusSignedOut      SessionStatus = "signedOut"
	StatusAuthenticating SessionStatus = "authenticating"
	StatusSignedIn       SessionStatus = "signedIn"
	StatusError          SessionStatus = "error"
)

// Session é o estado de autenticação corrente, de posse exclusiva da
// máquina de sessão. Os demais componentes apenas observam.
type Session struct {
	Status       SessionStatus `json:"status"`
	User         *User         `json:"user,omitempty"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
}

// ErrorCategory é uma das categorias fixas de erro de autenticação
// exibidas ao usuário, traduzidas a partir dos códigos do provedor
type ErrorCategory string

const (
	CategoryDuplicateAccount ErrorCategory = "duplicate-account"
	CategoryWeakCredential   ErrorCategory = "weak-credential"
	CategoryNotFound         ErrorCategory = "not-found"
	CategoryWrongCredential  ErrorCategory = "wrong-credential"
	CategoryMalformedEmail   ErrorCategory = "malformed-email"
	CategoryDisabled         ErrorCategory = "disabled"
	CategoryRateLimited      ErrorCategory = "rate-limited"
	CategoryNetwork          ErrorCategory = "network"
	CategoryUnknown          ErrorCategory = "unknown"
)

// AuthResult é o resultado tipado de toda operação de autenticação.
// Falhas nunca escapam como erros não tratados: Success=false carrega a
// mensagem e a categoria do problema.
type AuthResult struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
	Category ErrorCategory `json:"category,omitempty"`
	Token    string        `json:"token,omitempty"`
}
