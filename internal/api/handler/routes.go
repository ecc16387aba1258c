package handler

import (
	"net/http"

	"github.com/vfg2006/adserver-api/internal/api/handler/router"
	"github.com/vfg2006/adserver-api/internal/config"
	"github.com/vfg2006/adserver-api/internal/usecases/account"
	"github.com/vfg2006/adserver-api/internal/usecases/authenticating"
	"github.com/vfg2006/adserver-api/internal/usecases/deciding"
	"github.com/vfg2006/adserver-api/internal/usecases/reporting"
	"github.com/vfg2006/adserver-api/internal/usecases/tracking"
	"github.com/vfg2006/adserver-api/pkg/middleware"
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

// Decision expõe a decisão de anúncio, sem autenticação: é a rota chamada
// pelo JavaScript embarcado nas páginas dos publishers
func Decision(service deciding.Decider) []router.Route {
	return []router.Route{
		{
			Path:    "/api/v1/decision",
			Method:  http.MethodGet,
			Handler: GetDecision(service),
		},
		{
			Path:    "/api/v1/decision",
			Method:  http.MethodPost,
			Handler: PostDecision(service),
		},
	}
}

// Proxy expõe o rastreio de visualizações e cliques referenciados por nonce
func Proxy(service tracking.Tracker, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/proxy/ads/:id/:nonce/view",
			Method:  http.MethodGet,
			Handler: ProxyView(service, authenticator),
		},
		{
			Path:    "/proxy/ads/:id/:nonce/click",
			Method:  http.MethodGet,
			Handler: ProxyClick(service, authenticator),
		},
	}
}

// DoNotTrack expõe os recursos de privacidade do W3C Tracking Protection
func DoNotTrack(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/.well-known/dnt",
			Method:  http.MethodGet,
			Handler: GetDNTStatus(cfg),
		},
		{
			Path:    "/.well-known/dnt-policy.txt",
			Method:  http.MethodGet,
			Handler: GetDNTPolicy(cfg),
		},
	}
}

func Publishers(service account.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/publishers",
			Method:      http.MethodGet,
			Handler:     ListPublishers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/publishers/:slug",
			Method:      http.MethodGet,
			Handler:     GetPublisher(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/publishers/:slug",
			Method:      http.MethodPut,
			Handler:     UpdatePublisher(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Advertisers(service account.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/advertisers",
			Method:      http.MethodGet,
			Handler:     ListAdvertisers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advertisers/:slug",
			Method:      http.MethodGet,
			Handler:     GetAdvertiser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advertisers/:slug",
			Method:      http.MethodPut,
			Handler:     UpdateAdvertiser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Reports expõe os relatórios diários por entidade, o consolidado mensal e
// as exportações em CSV
func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/publishers/:slug/report",
			Method:      http.MethodGet,
			Handler:     GetPublisherReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/publishers/:slug/report/csv",
			Method:      http.MethodGet,
			Handler:     GetPublisherReportCSV(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advertisers/:slug/report",
			Method:      http.MethodGet,
			Handler:     GetAdvertiserReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advertisers/:slug/report/csv",
			Method:      http.MethodGet,
			Handler:     GetAdvertiserReportCSV(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/publishers",
			Method:      http.MethodGet,
			Handler:     GetAllPublishersReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/advertisers",
			Method:      http.MethodGet,
			Handler:     GetAllAdvertisersReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/links",
			Method:      http.MethodPost,
			Handler:     LinkUserEntity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/links/remove",
			Method:      http.MethodPost,
			Handler:     UnlinkUserEntity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
