// Package ingesting implementa o pipeline de ingestão: valida o arquivo
// candidato, delega a decodificação dos bytes ao colaborador de planilhas e
// normaliza cada linha no registro canônico, tudo ou nada por arquivo.
package ingesting

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// File é o arquivo candidato à ingestão, como recebido do runtime
type File interface {
	Name() string
	ContentType() string
	Size() int64
	Bytes() ([]byte, error)
}

// Ingester transforma um arquivo em um RecordSet validado. Não guarda
// estado compartilhado: armazenar o resultado é responsabilidade do chamador,
// assim como serializar chamadas concorrentes.
type Ingester interface {
	Ingest(ctx context.Context, file File) (domain.RecordSet, error)
}

var allowedContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

var allowedExtensions = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

type Service struct {
	decoder     spreadsheet.Decoder
	maxFileSize int64
}

func NewService(decoder spreadsheet.Decoder, cfg *config.Config) Ingester {
	return &Service{
		decoder:     decoder,
		maxFileSize: cfg.Upload.MaxFileSizeBytes,
	}
}

func (s *Service) Ingest(ctx context.Context, file File) (domain.RecordSet, error) {
	if err := s.validate(file); err != nil {
		return nil, err
	}

	data, err := file.Bytes()
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler o conteúdo do arquivo enviado")
		return nil, NewIngestError(ErrDecodeFailure, "erro ao ler o arquivo")
	}

	rows, err := s.decoder.Decode(data)
	if err != nil {
		logrus.WithError(err).WithField("file", file.Name()).Error("Erro ao decodificar planilha")
		return nil, NewIngestError(ErrDecodeFailure, err.Error())
	}

	records := make(domain.RecordSet, 0, len(rows))
	for i, row := range rows {
		records = append(records, NormalizeRow(row, i))
	}

	logrus.WithFields(logrus.Fields{
		"file":    file.Name(),
		"records": len(records),
	}).Info("Planilha ingerida com sucesso")

	return records, nil
}

// validate aplica as checagens que impedem a operação de sequer começar:
// tipo/extensão reconhecidos e tamanho dentro do limite
func (s *Service) validate(file File) error {
	contentTypeOK := allowedContentTypes[strings.ToLower(file.ContentType())]
	extensionOK := allowedExtensions[strings.ToLower(filepath.Ext(file.Name()))]

	if !contentTypeOK && !extensionOK {
		return NewIngestError(ErrUnsupportedType,
			fmt.Sprintf("envie um arquivo CSV ou Excel (.csv, .xlsx, .xls), recebido %q", file.ContentType()))
	}

	if file.Size() > s.maxFileSize {
		return NewIngestError(ErrFileTooLarge,
			fmt.Sprintf("o arquivo tem %d bytes e o limite é %d", file.Size(), s.maxFileSize))
	}

	return nil
}
