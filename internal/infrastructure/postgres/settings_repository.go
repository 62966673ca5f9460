package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La tabla guarda un registro único con id fijo.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

const settingsRowID = "site"

// Get devuelve la configuración actual, o nil si nunca se ha guardado.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.SiteSettings, error) {
	query := `
		SELECT id, site_name, logo_url, theme_color, currency_code, footer_text, social_links, updated_at
		FROM site_settings WHERE id = $1`
	var s entity.SiteSettings
	var rawLinks []byte
	err := r.q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.ID, &s.SiteName, &s.LogoURL, &s.ThemeColor, &s.CurrencyCode,
		&s.FooterText, &rawLinks, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if len(rawLinks) > 0 {
		if err := json.Unmarshal(rawLinks, &s.SocialLinks); err != nil {
			return nil, fmt.Errorf("decode social links: %w", err)
		}
	}
	return &s, nil
}

// Upsert inserta o reemplaza el registro único de configuración.
func (r *SettingsRepo) Upsert(ctx context.Context, settings *entity.SiteSettings) error {
	links, err := settings.SocialLinksJSON()
	if err != nil {
		return fmt.Errorf("encode social links: %w", err)
	}
	query := `
		INSERT INTO site_settings (id, site_name, logo_url, theme_color, currency_code, footer_text, social_links, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET site_name = EXCLUDED.site_name, logo_url = EXCLUDED.logo_url,
		              theme_color = EXCLUDED.theme_color, currency_code = EXCLUDED.currency_code,
		              footer_text = EXCLUDED.footer_text, social_links = EXCLUDED.social_links,
		              updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(ctx, query,
		settingsRowID, settings.SiteName, settings.LogoURL, settings.ThemeColor,
		settings.CurrencyCode, settings.FooterText, links, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
