package dto

import (
	"time"

	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
)

// UpdateSettingsRequest body para PUT /api/settings. Campos nil no cambian.
type UpdateSettingsRequest struct {
	SiteName     *string              `json:"site_name,omitempty"`
	LogoURL      *string              `json:"logo_url,omitempty"`
	ThemeColor   *string              `json:"theme_color,omitempty"`
	CurrencyCode *string              `json:"currency_code,omitempty"`
	FooterText   *string              `json:"footer_text,omitempty"`
	SocialLinks  []entity.SocialLink  `json:"social_links,omitempty"`
}

// SettingsResponse configuración del sitio en respuestas.
type SettingsResponse struct {
	SiteName     string              `json:"site_name"`
	LogoURL      string              `json:"logo_url,omitempty"`
	ThemeColor   string              `json:"theme_color"`
	CurrencyCode string              `json:"currency_code"`
	FooterText   string              `json:"footer_text,omitempty"`
	SocialLinks  []entity.SocialLink `json:"social_links"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
