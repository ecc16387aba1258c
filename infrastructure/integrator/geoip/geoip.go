package geoip

import (
	"net"

	"github.com/oschwald/geoip2-golang"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/internal/config"
)

// GeoLocator resolve o país de origem de um IP para fins de segmentação.
// Retorna string vazia quando a geolocalização não está disponível.
type GeoLocator interface {
	CountryCode(ip string) string
	Close() error
}

type maxmindLocator struct {
	reader *geoip2.Reader
}

// New abre a base MaxMind configurada. Com a geolocalização desabilitada,
// retorna um localizador nulo que nunca restringe por país.
func New(cfg config.GeoIP) (GeoLocator, error) {
	if !cfg.Enabled || cfg.DatabasePath == "" {
		logrus.Info("Geolocalização desabilitada, segmentação por país será ignorada")
		return &noopLocator{}, nil
	}

	reader, err := geoip2.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	logrus.WithField("database", cfg.DatabasePath).Info("Base de geolocalização carregada")
	return &maxmindLocator{reader: reader}, nil
}

func (l *maxmindLocator) CountryCode(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}

	record, err := l.reader.Country(parsed)
	if err != nil {
		logrus.WithError(err).WithField("ip", ip).Debug("Erro ao resolver país do IP")
		return ""
	}

	return record.Country.IsoCode
}

func (l *maxmindLocator) Close() error {
	return l.reader.Close()
}

type noopLocator struct{}

func (l *noopLocator) CountryCode(string) string { return "" }
func (l *noopLocator) Close() error              { return nil }
