package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name     string
		raw      spreadsheet.Row
		index    int
		expected domain.ProductRecord
	}{
		{
			name: "Linha completa com cabeçalhos legíveis",
			raw: spreadsheet.Row{
				"Product Name":      "Teclado Mecânico",
				"Sales":             1500.0,
				"Profit":            300.0,
				"TE":                50.0,
				"Credit":            20.0,
				"Amazon Fee":        80.0,
				"Profit Percentage": 20.0,
			},
			index: 0,
			expected: domain.ProductRecord{
				ID:               1,
				ProductName:      "Teclado Mecânico",
				Sales:            1500.0,
				Profit:           300.0,
				TE:               50.0,
				Credit:           20.0,
				AmazonFee:        80.0,
				ProfitPercentage: 20.0,
			},
		},
		{
			name: "Linha completa com cabeçalhos camel case",
			raw: spreadsheet.Row{
				"productName":      "Mouse Gamer",
				"sales":            900.0,
				"profit":           180.0,
				"te":               30.0,
				"credit":           10.0,
				"amazonFee":        45.0,
				"profitPercentage": 20.0,
			},
			index: 2,
			expected: domain.ProductRecord{
				ID:               3,
				ProductName:      "Mouse Gamer",
				Sales:            900.0,
				Profit:           180.0,
				TE:               30.0,
				Credit:           10.0,
				AmazonFee:        45.0,
				ProfitPercentage: 20.0,
			},
		},
		{
			name: "Cabeçalho legível vence a variante camel case quando ambos presentes",
			raw: spreadsheet.Row{
				"Product Name": "Nome Oficial",
				"productName":  "Nome Alternativo",
				"Sales":        100.0,
				"sales":        999.0,
			},
			index: 0,
			expected: domain.ProductRecord{
				ID:          1,
				ProductName: "Nome Oficial",
				Sales:       100.0,
			},
		},
		{
			name:  "Linha vazia recebe os valores padrão do esquema",
			raw:   spreadsheet.Row{},
			index: 4,
			expected: domain.ProductRecord{
				ID:          5,
				ProductName: "Unknown Product",
			},
		},
		{
			name: "Nome em branco recebe o nome padrão",
			raw: spreadsheet.Row{
				"Product Name": "   ",
				"Sales":        250.0,
			},
			index: 0,
			expected: domain.ProductRecord{
				ID:          1,
				ProductName: "Unknown Product",
				Sales:       250.0,
			},
		},
		{
			name: "Valores numéricos em texto são convertidos",
			raw: spreadsheet.Row{
				"Product Name": "Fone de Ouvido",
				"Sales":        "1200.50",
				"Profit":       " 240 ",
			},
			index: 0,
			expected: domain.ProductRecord{
				ID:          1,
				ProductName: "Fone de Ouvido",
				Sales:       1200.50,
				Profit:      240.0,
			},
		},
		{
			name: "Célula numérica ilegível vira zero sem falhar a linha",
			raw: spreadsheet.Row{
				"Product Name": "Webcam",
				"Sales":        "abc",
				"Profit":       150.0,
			},
			index: 0,
			expected: domain.ProductRecord{
				ID:          1,
				ProductName: "Webcam",
				Sales:       0,
				Profit:      150.0,
			},
		},
		{
			name: "Valores inteiros são coagidos para float",
			raw: spreadsheet.Row{
				"Product Name": "Monitor",
				"Sales":        int(2000),
				"Profit":       int64(400),
			},
			index: 0,
			expected: domain.ProductRecord{
				ID:          1,
				ProductName: "Monitor",
				Sales:       2000.0,
				Profit:      400.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeRow(tt.raw, tt.index)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeRow_IDDeterministicoPorPosicao(t *testing.T) {
	// O mesmo arquivo ingerido duas vezes produz exatamente os mesmos IDs
	rows := []spreadsheet.Row{
		{"Product Name": "A"},
		{"Product Name": "B"},
		{"Product Name": "C"},
	}

	for run := 0; run < 2; run++ {
		for i, raw := range rows {
			record := NormalizeRow(raw, i)
			assert.Equal(t, i+1, record.ID)
		}
	}
}
