package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/navigating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/login/google",
			Method:  http.MethodPost,
			Handler: LoginWithGoogle(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/password-reset",
			Method:  http.MethodPost,
			Handler: PasswordReset(service),
		},
		{
			Path:    "/v1/session",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
	}
}

func Upload(nav navigating.Navigator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/upload",
			Method:  http.MethodPost,
			Handler: UploadSpreadsheet(nav),
		},
	}
}

func Dashboard(nav navigating.Navigator, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(nav, analyzer),
		},
		{
			Path:    "/v1/dashboard/charts",
			Method:  http.MethodGet,
			Handler: GetDashboardCharts(nav, analyzer),
		},
		{
			Path:    "/v1/dashboard/records",
			Method:  http.MethodGet,
			Handler: GetDashboardRecords(nav),
		},
		{
			Path:    "/v1/dashboard/tab",
			Method:  http.MethodPut,
			Handler: SetActiveTab(nav),
		},
	}
}

func Products(nav navigating.Navigator, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/:id/select",
			Method:  http.MethodPost,
			Handler: SelectProduct(nav),
		},
		{
			Path:    "/v1/products/selected",
			Method:  http.MethodGet,
			Handler: GetSelectedProduct(nav, analyzer),
		},
	}
}

func Navigation(nav navigating.Navigator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/navigation",
			Method:  http.MethodGet,
			Handler: GetNavigationState(nav),
		},
		{
			Path:    "/v1/navigation/back",
			Method:  http.MethodPost,
			Handler: NavigateBack(nav),
		},
	}
}
