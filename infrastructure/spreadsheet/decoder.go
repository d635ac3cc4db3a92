// Package spreadsheet decodifica o conteúdo bruto de uma planilha na
// sequência ordenada de linhas da primeira aba, cada linha como um mapa de
// cabeçalho de coluna para valor de célula.
package spreadsheet

import "errors"

// ErrMalformed indica conteúdo binário ilegível como planilha
var ErrMalformed = errors.New("não foi possível ler a planilha")

// Row é uma linha bruta: cabeçalho da coluna -> valor da célula
type Row map[string]any

// Decoder é o colaborador de decodificação de planilhas. Lê apenas a
// primeira aba e preserva a ordem das linhas de origem.
type Decoder interface {
	Decode(data []byte) ([]Row, error)
}
