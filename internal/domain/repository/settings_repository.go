package repository

import (
	"context"

	"github.com/tu-usuario/storefront-admin/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia para la configuración
// del sitio (registro único).
type SettingsRepository interface {
	// Get devuelve la configuración actual, o nil si nunca se ha guardado.
	Get(ctx context.Context) (*entity.SiteSettings, error)
	// Upsert inserta o reemplaza el registro único de configuración.
	Upsert(ctx context.Context, settings *entity.SiteSettings) error
}
