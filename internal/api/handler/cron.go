package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/internal/scheduler"
	"github.com/vfg2006/adserver-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthlyReport = "monthly-report"
	CronJobTypeRetention     = "retention"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlyReportSyncService *scheduler.MonthlyReportSyncService
	RetentionSyncService     *scheduler.RetentionSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlyReport:
			if services.MonthlyReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de consolidação mensal não disponível", nil)
				return
			}
			services.MonthlyReportSyncService.TriggerManualSync()

		case CronJobTypeRetention:
			if services.RetentionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de retenção não disponível", nil)
				return
			}
			services.RetentionSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MonthlyReportSyncService != nil {
				services.MonthlyReportSyncService.TriggerManualSync()
			}
			if services.RetentionSyncService != nil {
				services.RetentionSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-report, retention, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"monthly-report": services.MonthlyReportSyncService.GetStatus(),
			"retention":      services.RetentionSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
