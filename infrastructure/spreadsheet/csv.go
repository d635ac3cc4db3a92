package spreadsheet

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"
)

func decodeCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
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
