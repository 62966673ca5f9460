package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/storefront-admin/internal/application/dto"
	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
	"github.com/tu-usuario/storefront-admin/internal/domain/repository"
)

// SettingsUseCase configuración global del sitio con estado en proceso:
// se carga una vez al arrancar y se invalida en cada escritura. Las lecturas
// no tocan la BD mientras la caché sea válida.
type SettingsUseCase struct {
	repo repository.SettingsRepository

	mu     sync.RWMutex
	cached *entity.SiteSettings
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Warm carga la configuración al arrancar el proceso. Si nunca se guardó,
// la caché queda con los valores por defecto.
func (uc *SettingsUseCase) Warm(ctx context.Context) error {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = defaultSettings()
	}
	uc.mu.Lock()
	uc.cached = settings
	uc.mu.Unlock()
	return nil
}

// Get devuelve la configuración actual desde la caché en proceso.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	uc.mu.RLock()
	cached := uc.cached
	uc.mu.RUnlock()

	if cached == nil {
		if err := uc.Warm(ctx); err != nil {
			return nil, err
		}
		uc.mu.RLock()
		cached = uc.cached
		uc.mu.RUnlock()
	}
	return toSettingsResponse(cached), nil
}

// Update persiste los cambios y refresca la caché en la misma operación
// (invalidate-on-write, sin polling).
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	current, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = defaultSettings()
	}
	if in.SiteName != nil {
		current.SiteName = *in.SiteName
	}
	if in.LogoURL != nil {
		current.LogoURL = *in.LogoURL
	}
	if in.ThemeColor != nil {
		current.ThemeColor = *in.ThemeColor
	}
	if in.CurrencyCode != nil {
		current.CurrencyCode = *in.CurrencyCode
	}
	if in.FooterText != nil {
		current.FooterText = *in.FooterText
	}
	if in.SocialLinks != nil {
		current.SocialLinks = in.SocialLinks
	}
	current.UpdatedAt = time.Now()

	if err := uc.repo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.cached = current
	uc.mu.Unlock()
	return toSettingsResponse(current), nil
}

func defaultSettings() *entity.SiteSettings {
	return &entity.SiteSettings{
		ID:           "site",
		SiteName:     "Storefront",
		ThemeColor:   "#1f2937",
		CurrencyCode: "COP",
		SocialLinks:  []entity.SocialLink{},
	}
}

func toSettingsResponse(s *entity.SiteSettings) *dto.SettingsResponse {
	links := s.SocialLinks
	if links == nil {
		links = []entity.SocialLink{}
	}
	return &dto.SettingsResponse{
		SiteName:     s.SiteName,
		LogoURL:      s.LogoURL,
		ThemeColor:   s.ThemeColor,
		CurrencyCode: s.CurrencyCode,
		FooterText:   s.FooterText,
		SocialLinks:  links,
		UpdatedAt:    s.UpdatedAt,
	}
}
