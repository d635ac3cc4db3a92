package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de autenticação (AUTH_xxx)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled       = "AUTH_002" // Usuário desativado
	ErrUserNotFound       = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken       = "AUTH_004" // Token inválido
	ErrUserAlreadyExists  = "AUTH_005" // Usuário já existe
	ErrWeakPassword       = "AUTH_006" // Senha fraca
	ErrTooManyAttempts    = "AUTH_007" // Muitas tentativas de login
	ErrAuthProvider       = "AUTH_008" // Falha no provedor de identidade

	// Erros de validação (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de upload (UPL_xxx)
	ErrUnsupportedFileType = "UPL_001" // Tipo de arquivo não suportado
	ErrFileTooLarge        = "UPL_002" // Arquivo acima do limite de tamanho
	ErrDecodeFailure       = "UPL_003" // Falha ao decodificar a planilha
	ErrUploadSuperseded    = "UPL_004" // Upload substituído por outro mais recente

	// Erros de navegação (NAV_xxx)
	ErrInvalidTransition = "NAV_001" // Ação de navegação inválida para a página atual
	ErrRecordNotFound    = "NAV_002" // Registro não encontrado no conjunto atual

	// Erros do servidor (SRV_xxx)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserDisabled:        http.StatusForbidden,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrUserAlreadyExists:   http.StatusBadRequest,
	ErrWeakPassword:        http.StatusBadRequest,
	ErrTooManyAttempts:     http.StatusTooManyRequests,
	ErrAuthProvider:        http.StatusBadGateway,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnsupportedFileType: http.StatusUnsupportedMediaType,
	ErrFileTooLarge:        http.StatusRequestEntityTooLarge,
	ErrDecodeFailure:       http.StatusUnprocessableEntity,
	ErrUploadSuperseded:    http.StatusConflict,
	ErrInvalidTransition:   http.StatusConflict,
	ErrRecordNotFound:      http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
