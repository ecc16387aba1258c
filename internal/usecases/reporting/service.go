package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vfg2006/adserver-api/infrastructure/repository"
	"github.com/vfg2006/adserver-api/internal/domain"
	"github.com/vfg2006/adserver-api/pkg/utils"
)

// defaultReportDays é a janela padrão quando a data inicial não é informada
const defaultReportDays = 30

type Reporter interface {
	PublisherReport(slug string, filters *domain.ReportFilters) (*domain.PublisherReport, error)
	AdvertiserReport(slug string, filters *domain.ReportFilters) (*domain.AdvertiserReport, error)
	AllPublishersReport(filters *domain.ReportFilters) (*domain.AllPublishersReport, error)
	AllAdvertisersReport(filters *domain.ReportFilters) (*domain.AllAdvertisersReport, error)
	MonthlyReport(period string) ([]*domain.MonthlyReportRow, error)
	AvailablePeriods() (*domain.AvailablePeriods, error)
	WriteCSV(w io.Writer, report *domain.Report) error
}

type Service struct {
	publisherRepo  repository.PublisherRepository
	advertiserRepo repository.AdvertiserRepository
	adRepo         repository.AdRepository
	impressionRepo repository.ImpressionRepository
	monthlyRepo    repository.MonthlyReportRepository
}

func NewService(
	publisherRepo repository.PublisherRepository,
	advertiserRepo repository.AdvertiserRepository,
	adRepo repository.AdRepository,
	impressionRepo repository.ImpressionRepository,
	monthlyRepo repository.MonthlyReportRepository,
) Reporter {
	return &Service{
		publisherRepo:  publisherRepo,
		advertiserRepo: advertiserRepo,
		adRepo:         adRepo,
		impressionRepo: impressionRepo,
		monthlyRepo:    monthlyRepo,
	}
}

// resolvePeriod aplica os padrões do período: início em hoje-30d quando não
// informado, fim em hoje quando não informado ou quando anterior ao início
func resolvePeriod(filters *domain.ReportFilters) (time.Time, time.Time) {
	today := utils.AdDay()

	start := today.AddDate(0, 0, -defaultReportDays)
	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		start = utils.TruncateToDay(*filters.StartDate)
	}

	end := today
	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		end = utils.TruncateToDay(*filters.EndDate)
	}

	if end.Before(start) {
		end = today
	}

	return start, end
}

func campaignTypeFilter(filters *domain.ReportFilters) (string, error) {
	if filters == nil || filters.CampaignType == "" {
		return "", nil
	}
	if !domain.IsValidCampaignType(filters.CampaignType) {
		return "", ErrInvalidCampaignType
	}
	return filters.CampaignType, nil
}

func (s *Service) PublisherReport(slug string, filters *domain.ReportFilters) (*domain.PublisherReport, error) {
	campaignType, err := campaignTypeFilter(filters)
	if err != nil {
		return nil, err
	}

	publisher, err := s.publisherRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar publisher: %w", err)
	}
	if publisher == nil {
		return nil, ErrPublisherNotFound
	}

	start, end := resolvePeriod(filters)

	impressions, err := s.impressionRepo.GetByPublisher(publisher.ID, start, end, campaignType)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar agregados do publisher: %w", err)
	}

	return &domain.PublisherReport{
		Publisher: publisher,
		Report:    domain.NewReport(impressions, start, end, publisher.RevenueSharePercent),
	}, nil
}

func (s *Service) AdvertiserReport(slug string, filters *domain.ReportFilters) (*domain.AdvertiserReport, error) {
	advertiser, err := s.advertiserRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anunciante: %w", err)
	}
	if advertiser == nil {
		return nil, ErrAdvertiserNotFound
	}

	start, end := resolvePeriod(filters)

	impressions, err := s.impressionRepo.GetByAdvertiser(advertiser.Slug, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar agregados do anunciante: %w", err)
	}

	flights, err := s.adRepo.ListFlightsByAdvertiser(advertiser.Slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar flights do anunciante: %w", err)
	}

	return &domain.AdvertiserReport{
		Advertiser: advertiser,
		// Anunciantes não têm repasse: o relatório mostra o custo integral
		Report:  domain.NewReport(impressions, start, end, 0),
		Flights: flightReports(flights, impressions, start, end),
	}, nil
}

// flightReports detalha o desempenho do anunciante por flight e por anúncio.
// Flights sem visualizações no período ficam de fora do detalhamento
func flightReports(flights []*domain.Flight, impressions []*domain.AdImpression, start, end time.Time) []*domain.FlightReport {
	byAd := make(map[string][]*domain.AdImpression)
	for _, impression := range impressions {
		byAd[impression.AdvertisementID] = append(byAd[impression.AdvertisementID], impression)
	}

	reports := make([]*domain.FlightReport, 0, len(flights))
	for _, flight := range flights {
		flightImpressions := make([]*domain.AdImpression, 0)
		for _, ad := range flight.Advertisements {
			flightImpressions = append(flightImpressions, byAd[ad.ID]...)
		}

		report := domain.NewReport(flightImpressions, start, end, 0)
		if report.Total.Views == 0 {
			continue
		}

		flightReport := &domain.FlightReport{
			Flight:         flight,
			Report:         report,
			Advertisements: make([]*domain.AdvertisementReport, 0, len(flight.Advertisements)),
		}

		for _, ad := range flight.Advertisements {
			adImpressions := byAd[ad.ID]
			if len(adImpressions) == 0 {
				continue
			}
			flightReport.Advertisements = append(flightReport.Advertisements, &domain.AdvertisementReport{
				Advertisement: ad,
				Report:        domain.NewReport(adImpressions, start, end, 0),
			})
		}

		reports = append(reports, flightReport)
	}

	return reports
}

// AllPublishersReport monta o relatório de todos os publishers com
// visualizações no período, na ordem retornada pelo banco, com os totais
// diários somados entre eles
func (s *Service) AllPublishersReport(filters *domain.ReportFilters) (*domain.AllPublishersReport, error) {
	campaignType, err := campaignTypeFilter(filters)
	if err != nil {
		return nil, err
	}

	start, end := resolvePeriod(filters)

	slugs, err := s.impressionRepo.ListActivePublisherSlugs(start, end, campaignType)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar publishers ativos: %w", err)
	}

	reports := make([]*domain.PublisherReport, 0, len(slugs))
	names := make([]string, 0, len(slugs))
	dailyReports := make([]*domain.Report, 0, len(slugs))

	for _, slug := range slugs {
		report, err := s.PublisherReport(slug, filters)
		if err != nil {
			return nil, err
		}

		// Publishers que só tiveram ofertas, sem visualização, ficam de fora
		if report.Report.Total.Views == 0 {
			continue
		}

		reports = append(reports, report)
		names = append(names, report.Publisher.Name)
		dailyReports = append(dailyReports, report.Report)
	}

	days, total := domain.AggregateReports(names, dailyReports)

	return &domain.AllPublishersReport{
		Reports: reports,
		Days:    days,
		Total:   total,
	}, nil
}

func (s *Service) AllAdvertisersReport(filters *domain.ReportFilters) (*domain.AllAdvertisersReport, error) {
	start, end := resolvePeriod(filters)

	slugs, err := s.impressionRepo.ListActiveAdvertiserSlugs(start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anunciantes ativos: %w", err)
	}

	reports := make([]*domain.AdvertiserReport, 0, len(slugs))
	names := make([]string, 0, len(slugs))
	dailyReports := make([]*domain.Report, 0, len(slugs))

	for _, slug := range slugs {
		report, err := s.AdvertiserReport(slug, filters)
		if err != nil {
			return nil, err
		}

		if report.Report.Total.Views == 0 {
			continue
		}

		reports = append(reports, report)
		names = append(names, report.Advertiser.Name)
		dailyReports = append(dailyReports, report.Report)
	}

	days, total := domain.AggregateReports(names, dailyReports)

	return &domain.AllAdvertisersReport{
		Reports: reports,
		Days:    days,
		Total:   total,
	}, nil
}

func (s *Service) MonthlyReport(period string) ([]*domain.MonthlyReportRow, error) {
	if _, err := time.Parse("01-2006", period); err != nil {
		return nil, ErrInvalidPeriod
	}

	rows, err := s.monthlyRepo.GetByPeriod(period)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar consolidado mensal: %w", err)
	}

	return rows, nil
}

func (s *Service) AvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.monthlyRepo.GetAvailablePeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar períodos disponíveis: %w", err)
	}

	return &domain.AvailablePeriods{Periods: periods}, nil
}

var csvHeader = []string{"date", "views", "clicks", "ctr", "ecpm", "revenue", "revenue_share"}

// WriteCSV exporta o relatório omitindo os dias sem nenhum tráfego.
// A linha de total é sempre escrita, mesmo em períodos vazios.
func (s *Service) WriteCSV(w io.Writer, report *domain.Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("erro ao escrever o cabeçalho do CSV: %w", err)
	}

	for _, day := range report.Days {
		if day.IsEmpty() {
			continue
		}
		if err := writer.Write(csvRow(day.Date.Format("2006-01-02"), day)); err != nil {
			return fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	if err := writer.Write(csvRow("Total", report.Total)); err != nil {
		return fmt.Errorf("erro ao escrever o total do CSV: %w", err)
	}

	writer.Flush()
	return writer.Error()
}

func csvRow(label string, entry *domain.DailyReportEntry) []string {
	return []string{
		label,
		strconv.Itoa(entry.Views),
		strconv.Itoa(entry.Clicks),
		strconv.FormatFloat(entry.CTR, 'f', 2, 64),
		strconv.FormatFloat(entry.ECPM, 'f', 2, 64),
		strconv.FormatFloat(entry.Revenue, 'f', 2, 64),
		strconv.FormatFloat(entry.RevenueShare, 'f', 2, 64),
	}
}
