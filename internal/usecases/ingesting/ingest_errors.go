package ingesting

import (
	"errors"
	"fmt"
)

// Erros de validação e decodificação do pipeline de ingestão
var (
	// ErrUnsupportedType indica que nem o tipo declarado nem a extensão do
	// arquivo correspondem a csv, xls ou xlsx
	ErrUnsupportedType = errors.New("tipo de arquivo não suportado")

	// ErrFileTooLarge indica arquivo acima do limite configurado
	ErrFileTooLarge = errors.New("arquivo acima do tamanho máximo permitido")

	// ErrDecodeFailure indica que o decodificador não conseguiu ler o conteúdo
	ErrDecodeFailure = errors.New("erro ao processar o arquivo, verifique o formato")
)

// IngestError agrega o erro base com detalhes para exibição ao usuário
type IngestError struct {
	Err     error
	Details string
}

func (e *IngestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// NewIngestError cria um erro de ingestão com contexto adicional
func NewIngestError(baseErr error, details string) *IngestError {
	return &IngestError{
		Err:     baseErr,
		Details: details,
	}
}

// IsValidationError informa se o erro foi detectado antes da decodificação
// (a operação nem chega a começar nesses casos)
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrFileTooLarge)
}
