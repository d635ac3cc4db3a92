package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// ProductDetailsResponse agrega o registro selecionado com a classificação
// de lucro e a projeção mensal de tendência
type ProductDetailsResponse struct {
	Record       *domain.ProductRecord `json:"record"`
	ProfitStatus domain.ProfitStatus   `json:"profitStatus"`
	Trend        []domain.TrendPoint   `json:"trend"`
}

// SelectProduct abre a página de detalhes para o produto informado.
// A seleção só é permitida a partir do dashboard.
func SelectProduct(nav navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		if err := nav.SelectProduct(id); err != nil {
			handleNavigationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, nav.State())
	}
}

// GetSelectedProduct retorna os detalhes do produto selecionado. Quando a
// seleção ficou órfã (o conjunto foi trocado ou limpo depois dela) a resposta
// degrada para "não encontrado" em vez de exibir dado obsoleto.
func GetSelectedProduct(nav navigating.Navigator, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, found := nav.SelectedProduct()
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Produto não encontrado no conjunto atual", nil)
			return
		}

		writeJSON(w, http.StatusOK, ProductDetailsResponse{
			Record:       record,
			ProfitStatus: analyzer.ProfitStatus(record.ProfitPercentage),
			Trend:        analyzer.TrendProjection(record),
		})
	}
}

// NavigateBack retorna da página de detalhes para o dashboard
func NavigateBack(nav navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nav.Back()
		writeJSON(w, http.StatusOK, nav.State())
	}
}

// GetNavigationState retorna o snapshot do estado de navegação
func GetNavigationState(nav navigating.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nav.State())
	}
}

func handleNavigationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, navigating.ErrNotOnDashboard):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Seleção de produto só é permitida no dashboard", nil)

	case errors.Is(err, navigating.ErrRecordNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Produto não encontrado no conjunto atual", nil)

	case errors.Is(err, navigating.ErrNotSignedIn):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno de navegação", nil)
	}
}
