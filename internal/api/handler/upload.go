package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

const multipartMaxMemory = 32 << 20

// multipartFile adapta o arquivo multipart recebido para a ingestão
type multipartFile struct {
	file   multipart.File
	header *multipart.FileHeader
}

func (f *multipartFile) Name() string {
	return f.header.Filename
}

func (f *multipartFile) ContentType() string {
	return f.header.Header.Get("Content-Type")
}

func (f *multipartFile) Size() int64 {
	return f.header.Size
}

func (f *multipartFile) Bytes() ([]byte, error) {
	return io.ReadAll(f.file)
}

// UploadSpreadsheet recebe a planilha no campo "file", delega a ingestão ao
// orquestrador de navegação e retorna o conjunto normalizado
func UploadSpreadsheet(service navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não fornecido no campo 'file'", nil)
			return
		}
		defer file.Close()

		records, err := service.Upload(r.Context(), &multipartFile{file: file, header: header})
		if err != nil {
			handleUploadError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

// handleUploadError traduz os erros de validação, ingestão e navegação para
// as respostas padronizadas da API
func handleUploadError(w http.ResponseWriter, err error) {
	var ingestErr *ingesting.IngestError
	details := any(nil)
	if errors.As(err, &ingestErr) && ingestErr.Details != "" {
		details = map[string]any{"reason": ingestErr.Details}
	}

	switch {
	case errors.Is(err, ingesting.ErrUnsupportedType):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedFileType, "Tipo de arquivo não suportado. Envie um arquivo CSV, XLS ou XLSX", details)

	case errors.Is(err, ingesting.ErrFileTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo acima do limite de tamanho permitido", details)

	case errors.Is(err, ingesting.ErrDecodeFailure):
		apiErrors.WriteError(w, apiErrors.ErrDecodeFailure, "Não foi possível ler a planilha enviada", details)

	case errors.Is(err, navigating.ErrUploadSuperseded):
		apiErrors.WriteError(w, apiErrors.ErrUploadSuperseded, "Upload substituído por uma submissão mais recente", nil)

	case errors.Is(err, navigating.ErrNotSignedIn):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)

	default:
		logrus.WithError(err).Error("Erro inesperado durante o upload")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar o upload", nil)
	}
}
