package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/internal/usecases/reporting"
	"github.com/vfg2006/adserver-api/pkg/apiErrors"
	"github.com/vfg2006/adserver-api/pkg/middleware"
	"github.com/vfg2006/adserver-api/pkg/utils"
)

// GetPublisherReport retorna o relatório diário de um publisher em JSON
func GetPublisherReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		if !canAccessPublisher(r, slug) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esse publisher", nil)
			return
		}

		filters, err := reportFiltersFrom(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		report, err := service.PublisherReport(slug, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, report)
	}
}

// GetPublisherReportCSV exporta o relatório diário de um publisher em CSV
func GetPublisherReportCSV(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		if !canAccessPublisher(r, slug) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esse publisher", nil)
			return
		}

		filters, err := reportFiltersFrom(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		report, err := service.PublisherReport(slug, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeCSV(w, service, fmt.Sprintf("%s-report.csv", slug), report.Report)
	}
}

// GetAdvertiserReport retorna o relatório diário de um anunciante em JSON
func GetAdvertiserReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		if !canAccessAdvertiser(r, slug) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esse anunciante", nil)
			return
		}

		filters, err := reportFiltersFrom(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		report, err := service.AdvertiserReport(slug, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, report)
	}
}

// GetAdvertiserReportCSV exporta o relatório diário de um anunciante em CSV
func GetAdvertiserReportCSV(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		if !canAccessAdvertiser(r, slug) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esse anunciante", nil)
			return
		}

		filters, err := reportFiltersFrom(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		report, err := service.AdvertiserReport(slug, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeCSV(w, service, fmt.Sprintf("%s-report.csv", slug), report.Report)
	}
}

// GetAllPublishersReport retorna o relatório de todos os publishers com tráfego no período
func GetAllPublishersReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := reportFiltersFrom(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		reports, err := service.AllPublishersReport(filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, reports)
	}
}

// GetAllAdvertisersReport retorna o relatório de todos os anunciantes com tráfego no período
func GetAllAdvertisersReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := reportFiltersFrom(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas em formato inválido, use YYYY-MM-DD", nil)
			return
		}

		reports, err := service.AllAdvertisersReport(filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, reports)
	}
}

// GetMonthlyReport retorna o consolidado mensal pré-calculado de um período
func GetMonthlyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Período não especificado, use period=MM-YYYY", nil)
			return
		}

		rows, err := service.MonthlyReport(period)
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, rows)
	}
}

// GetAvailablePeriods lista os períodos mensais com consolidado disponível
func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.AvailablePeriods()
		if err != nil {
			handleReportError(w, err)
			return
		}

		writeJSON(w, periods)
	}
}

// reportFiltersFrom extrai o período e o tipo de campanha da query string
func reportFiltersFrom(r *http.Request) (*domain.ReportFilters, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &domain.ReportFilters{
		StartDate:    startDate,
		EndDate:      endDate,
		CampaignType: query.Get("campaign_type"),
	}, nil
}

// canAccessPublisher autoriza administradores, staff e usuários vinculados ao publisher
func canAccessPublisher(r *http.Request, slug string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return false
	}

	if claims.UserRoleID == domain.RoleAdmin || claims.UserStaff {
		return true
	}

	return claims.HasPublisher(slug)
}

// canAccessAdvertiser autoriza administradores, staff e usuários vinculados ao anunciante
func canAccessAdvertiser(r *http.Request, slug string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return false
	}

	if claims.UserRoleID == domain.RoleAdmin || claims.UserStaff {
		return true
	}

	return claims.HasAdvertiser(slug)
}

func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrPublisherNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPublisherNotFound, "Publisher não encontrado", nil)

	case errors.Is(err, reporting.ErrAdvertiserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAdvertiserNotFound, "Anunciante não encontrado", nil)

	case errors.Is(err, reporting.ErrInvalidCampaignType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCampaignType, "Tipo de campanha desconhecido", nil)

	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido, use o formato MM-YYYY", nil)

	default:
		logrus.WithError(err).Error("Erro ao montar relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeCSV(w http.ResponseWriter, service reporting.Reporter, filename string, report *domain.Report) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := service.WriteCSV(w, report); err != nil {
		logrus.WithError(err).Error("Erro ao exportar relatório em CSV")
	}
}
