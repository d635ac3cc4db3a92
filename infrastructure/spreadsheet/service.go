package spreadsheet

import (
	"bytes"
)

// xlsxMagic é a assinatura de arquivos zip, formato que embala o .xlsx
var xlsxMagic = []byte("PK\x03\x04")

type Service struct{}

func NewService() Decoder {
	return &Service{}
}

// Decode identifica o formato pelo conteúdo: pacotes zip são tratados como
// .xlsx; qualquer outro conteúdo é interpretado como CSV. Planilhas .xls
// legadas (binário OLE) não são decodificáveis e resultam em ErrMalformed.
func (s *Service) Decode(data []byte) ([]Row, error) {
	if bytes.HasPrefix(data, xlsxMagic) {
		return decodeXLSX(data)
	}

	return decodeCSV(data)
}
