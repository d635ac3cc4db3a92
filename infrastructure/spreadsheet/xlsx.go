package spreadsheet

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

func decodeXLSX(data []byte) ([]Row, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrMalformed, "pasta de trabalho sem abas")
	}

	// Somente a primeira aba é considerada
	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}

	if len(records) == 0 {
		return []Row{}, nil
	}

	headers := records[0]

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if i >= len(record) {
				break
			}
			row[header] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
