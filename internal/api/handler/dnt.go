package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adserver-api/internal/config"
)

type DNTStatusResponse struct {
	Tracking string `json:"tracking"`
	Policy   string `json:"policy,omitempty"`
}

// GetDNTStatus responde o recurso de status do Do Not Track (W3C Tracking
// Status Resource). "N" indica que o visitante com o cabeçalho DNT não é
// rastreado. Responde 404 quando o suporte a DNT está desabilitado
func GetDNTStatus(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.Tracking.DoNotTrack {
			http.NotFound(w, r)
			return
		}

		status := DNTStatusResponse{Tracking: "T"}

		if r.Header.Get("DNT") == "1" {
			status.Tracking = "N"
		}
		if cfg.Tracking.PrivacyPolicyURL != "" {
			status.Policy = cfg.Tracking.PrivacyPolicyURL
		}

		w.Header().Set("Content-Type", "application/tracking-status+json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o status de DNT")
		}
	}
}

// GetDNTPolicy serve a política de Do Not Track em texto puro.
// Responde 404 quando o suporte a DNT está desabilitado
func GetDNTPolicy(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.Tracking.DoNotTrack {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		policy := "Visitantes com o cabeçalho DNT habilitado não têm dados pessoais coletados por este servidor de anúncios.\n"
		if cfg.Tracking.PrivacyPolicyURL != "" {
			policy += "Política de privacidade completa: " + cfg.Tracking.PrivacyPolicyURL + "\n"
		}

		if _, err := w.Write([]byte(policy)); err != nil {
			logrus.WithError(err).Warn("Erro ao responder a política de DNT")
		}
	}
}
