package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type SetTabRequest struct {
	Tab domain.Tab `json:"tab"`
}

// GetDashboardSummary retorna os agregados do conjunto de registros corrente
func GetDashboardSummary(nav navigating.Navigator, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, analyzer.Summary(nav.Records()))
	}
}

// GetDashboardCharts retorna as séries de barras e pizza derivadas do
// conjunto corrente
func GetDashboardCharts(nav navigating.Navigator, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, analyzer.ChartProjection(nav.Records()))
	}
}

// GetDashboardRecords retorna o conjunto de registros normalizado
func GetDashboardRecords(nav navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := nav.Records()
		if records == nil {
			records = domain.RecordSet{}
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// SetActiveTab troca a aba ativa da barra lateral
func SetActiveTab(nav navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetTabRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := nav.SetActiveTab(req.Tab); err != nil {
			if errors.Is(err, navigating.ErrUnknownTab) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Aba desconhecida", map[string]any{"tab": req.Tab})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao trocar de aba", nil)
			return
		}

		writeJSON(w, http.StatusOK, nav.State())
	}
}
