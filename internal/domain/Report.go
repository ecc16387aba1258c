package domain

import (
	"time"

	"github.com/vfg2006/adserver-api/pkg/utils"
)

// ReportFilters delimita o período e o tipo de campanha de um relatório
type ReportFilters struct {
	StartDate    *time.Time
	EndDate      *time.Time
	CampaignType string
}

// DailyReportEntry é uma linha do relatório: um dia (ou o total) de tráfego
type DailyReportEntry struct {
	Date         time.Time `json:"date"`
	Views        int       `json:"views"`
	Clicks       int       `json:"clicks"`
	CTR          float64   `json:"ctr"`
	ECPM         float64   `json:"ecpm"`
	Cost         float64   `json:"cost"`
	Revenue      float64   `json:"revenue"`
	RevenueShare float64   `json:"revenue_share"`
}

// IsEmpty indica se o dia não teve nenhuma visualização nem clique
func (e *DailyReportEntry) IsEmpty() bool {
	return e.Views == 0 && e.Clicks == 0
}

// Report agrupa as linhas diárias e o total agregado de um período.
// O total está sempre presente, mesmo quando não houve tráfego.
type Report struct {
	Days  []*DailyReportEntry `json:"days"`
	Total *DailyReportEntry   `json:"total"`
}

// PublisherReport é o relatório de um publisher com seus dados cadastrais
type PublisherReport struct {
	Publisher *Publisher `json:"publisher"`
	Report    *Report    `json:"report"`
}

// AdvertiserReport é o relatório de um anunciante com seus dados cadastrais
// e o detalhamento por flight no período
type AdvertiserReport struct {
	Advertiser *Advertiser     `json:"advertiser"`
	Report     *Report         `json:"report"`
	Flights    []*FlightReport `json:"flights"`
}

// FlightReport é o desempenho de um flight no período, com o detalhamento
// por anúncio. Só entram no relatório flights com visualizações no período
type FlightReport struct {
	Flight         *Flight                `json:"flight"`
	Report         *Report                `json:"report"`
	Advertisements []*AdvertisementReport `json:"advertisements"`
}

// AdvertisementReport é o desempenho de um anúncio dentro do flight
type AdvertisementReport struct {
	Advertisement *Advertisement `json:"advertisement"`
	Report        *Report        `json:"report"`
}

// NewReport monta um relatório a partir dos agregados diários, preenchendo
// todos os dias do período e calculando o total ao final
func NewReport(impressions []*AdImpression, start, end time.Time, revenueSharePercent float64) *Report {
	byDay := make(map[time.Time]*DailyReportEntry)
	for _, day := range utils.DaysBetween(start, end) {
		byDay[day] = &DailyReportEntry{Date: day}
	}

	total := &DailyReportEntry{}

	for _, imp := range impressions {
		day := utils.TruncateToDay(imp.Date)
		entry, ok := byDay[day]
		if !ok {
			// Agregado fora do período solicitado
			continue
		}

		entry.Views += imp.Views
		entry.Clicks += imp.Clicks
		entry.Cost += imp.Spend
		entry.Revenue += imp.Spend

		total.Views += imp.Views
		total.Clicks += imp.Clicks
		total.Cost += imp.Spend
		total.Revenue += imp.Spend
	}

	days := make([]*DailyReportEntry, 0, len(byDay))
	for _, day := range utils.DaysBetween(start, end) {
		entry := byDay[day]
		entry.CTR = utils.CalculateCTR(entry.Clicks, entry.Views)
		entry.ECPM = utils.CalculateECPM(entry.Cost, entry.Views)
		entry.Cost = utils.RoundWithTwoDecimalPlace(entry.Cost)
		entry.Revenue = utils.RoundWithTwoDecimalPlace(entry.Revenue)
		entry.RevenueShare = utils.RoundWithTwoDecimalPlace(entry.Revenue * revenueSharePercent / 100)
		days = append(days, entry)
	}

	total.CTR = utils.CalculateCTR(total.Clicks, total.Views)
	total.ECPM = utils.CalculateECPM(total.Cost, total.Views)
	total.Cost = utils.RoundWithTwoDecimalPlace(total.Cost)
	total.Revenue = utils.RoundWithTwoDecimalPlace(total.Revenue)
	total.RevenueShare = utils.RoundWithTwoDecimalPlace(total.Revenue * revenueSharePercent / 100)

	return &Report{Days: days, Total: total}
}

// AllPublishersReport agrega os relatórios de todos os publishers com
// visualizações no período, com os totais diários combinados
type AllPublishersReport struct {
	Reports []*PublisherReport `json:"reports"`
	Days    []*AggregatedDay   `json:"days"`
	Total   *DailyReportEntry  `json:"total"`
}

// AllAdvertisersReport agrega os relatórios de todos os anunciantes com
// visualizações no período, com os totais diários combinados
type AllAdvertisersReport struct {
	Reports []*AdvertiserReport `json:"reports"`
	Days    []*AggregatedDay    `json:"days"`
	Total   *DailyReportEntry   `json:"total"`
}

// AggregatedDay é um dia somado entre entidades, guardando a contribuição
// de cada uma pelo nome
type AggregatedDay struct {
	Date           time.Time      `json:"date"`
	Views          int            `json:"views"`
	Clicks         int            `json:"clicks"`
	CTR            float64        `json:"ctr"`
	Cost           float64        `json:"cost"`
	ViewsByEntity  map[string]int `json:"views_by_entity"`
	ClicksByEntity map[string]int `json:"clicks_by_entity"`
}

// AggregateReports soma relatórios individuais dia a dia. As listas são
// paralelas: names[i] identifica o dono de reports[i]
func AggregateReports(names []string, reports []*Report) ([]*AggregatedDay, *DailyReportEntry) {
	byDay := make(map[time.Time]*AggregatedDay)
	order := make([]time.Time, 0)
	total := &DailyReportEntry{}

	for i, report := range reports {
		for _, day := range report.Days {
			entry, ok := byDay[day.Date]
			if !ok {
				entry = &AggregatedDay{
					Date:           day.Date,
					ViewsByEntity:  make(map[string]int),
					ClicksByEntity: make(map[string]int),
				}
				byDay[day.Date] = entry
				order = append(order, day.Date)
			}

			entry.Views += day.Views
			entry.Clicks += day.Clicks
			entry.Cost = utils.RoundWithTwoDecimalPlace(entry.Cost + day.Cost)
			entry.CTR = utils.CalculateCTR(entry.Clicks, entry.Views)
			entry.ViewsByEntity[names[i]] = day.Views
			entry.ClicksByEntity[names[i]] = day.Clicks
		}

		total.Views += report.Total.Views
		total.Clicks += report.Total.Clicks
		total.Cost += report.Total.Cost
		total.Revenue += report.Total.Revenue
		total.RevenueShare += report.Total.RevenueShare
	}

	days := make([]*AggregatedDay, 0, len(order))
	for _, date := range order {
		days = append(days, byDay[date])
	}

	total.CTR = utils.CalculateCTR(total.Clicks, total.Views)
	total.ECPM = utils.CalculateECPM(total.Cost, total.Views)
	total.Cost = utils.RoundWithTwoDecimalPlace(total.Cost)
	total.Revenue = utils.RoundWithTwoDecimalPlace(total.Revenue)
	total.RevenueShare = utils.RoundWithTwoDecimalPlace(total.RevenueShare)

	return days, total
}

// MonthlyReportRow é uma linha pré-calculada do consolidado mensal
type MonthlyReportRow struct {
	ID         int64     `json:"id"`
	EntityKind string    `json:"entity_kind"` // "publisher" ou "advertiser"
	EntitySlug string    `json:"entity_slug"`
	Period     string    `json:"period"` // formato "01-2006"
	Views      int       `json:"views"`
	Clicks     int       `json:"clicks"`
	Spend      float64   `json:"spend"`
	Revenue    float64   `json:"revenue"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AvailablePeriods lista os períodos mensais com consolidado disponível
type AvailablePeriods struct {
	Periods []string `json:"periods"`
}
