package entity

import (
	"encoding/json"
	"time"
)

// SocialLink enlace a una red social mostrado en el pie de página.
type SocialLink struct {
	Platform string `json:"platform"` // facebook, instagram, x, tiktok...
	URL      string `json:"url"`
}

// SiteSettings configuración global de la tienda (registro único).
// Se carga al iniciar el proceso y se invalida al escribir; no hay polling.
type SiteSettings struct {
	ID           string
	SiteName     string
	LogoURL      string
	ThemeColor   string // color primario del tema, hex
	CurrencyCode string // ISO 4217, p. ej. COP, USD
	FooterText   string
	SocialLinks  []SocialLink
	UpdatedAt    time.Time
}

// SocialLinksJSON serializa los enlaces sociales para la columna jsonb.
func (s *SiteSettings) SocialLinksJSON() (json.RawMessage, error) {
	if s.SocialLinks == nil {
		return json.RawMessage("[]"), nil
	}
	return json.Marshal(s.SocialLinks)
}
