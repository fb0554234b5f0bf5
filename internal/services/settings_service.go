package services

import (
	"strings"
	"time"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/franciscosanchezn/truckplate-api/internal/notify"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
)

// SettingsService manages display preferences and the data export
type SettingsService interface {
	// GetSettings returns the current display name and dark mode flag
	GetSettings() models.Settings
	// UpdateSettings applies the fields present in update
	UpdateSettings(update models.SettingsUpdate) (models.Settings, error)
	// ToggleDarkMode flips dark mode
	ToggleDarkMode() models.Settings
	// Export returns every recipe and invoice with the export time
	Export() models.Export
}

type settingsService struct {
	store  *state.Store
	notice *notify.Center
	now    func() time.Time
}

// NewSettingsService creates a new instance of SettingsService
func NewSettingsService(store *state.Store, notice *notify.Center) SettingsService {
	return &settingsService{store: store, notice: notice, now: time.Now}
}

func settingsOf(s state.State) models.Settings {
	return models.Settings{DisplayName: s.DisplayName, DarkMode: s.DarkMode}
}

func (s *settingsService) GetSettings() models.Settings {
	return settingsOf(s.store.Snapshot())
}

func (s *settingsService) UpdateSettings(update models.SettingsUpdate) (models.Settings, error) {
	var name string
	if update.DisplayName != nil {
		name = strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return models.Settings{}, &ValidationError{Fields: map[string]string{
				"displayName": "Display name is required",
			}}
		}
	}

	if update.DisplayName != nil {
		s.store.Dispatch(state.SetDisplayName{Name: name})
	}
	if update.DarkMode != nil {
		s.store.Dispatch(state.SetDarkMode{On: *update.DarkMode})
	}
	return s.GetSettings(), nil
}

func (s *settingsService) ToggleDarkMode() models.Settings {
	return settingsOf(s.store.Dispatch(state.ToggleDarkMode{}))
}

func (s *settingsService) Export() models.Export {
	snap := s.store.Snapshot()
	s.notice.Success(notify.MsgDataCopied)
	return models.Export{
		Recipes:    snap.Recipes,
		Invoices:   snap.Invoices,
		ExportedAt: s.now().UTC(),
	}
}
