package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"

	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/movement"
)

// SavedSettings is the tuning snapshot stored on disk. Only tuning is
// persisted; character state never is.
type SavedSettings struct {
	Movement movement.Tuning `json:"movement"`
}

const settingsItem = "settings"

var (
	gdataManager *gdata.Manager
	persistLog   zerolog.Logger
)

// InitPersistence opens the gdata store. Failure is non-fatal: the demo
// runs with in-memory settings only.
func InitPersistence(log zerolog.Logger) error {
	persistLog = log
	m, err := gdata.Open(gdata.Config{
		AppName: "crestwalker",
	})
	if err != nil {
		log.Warn().Err(err).Msg("persistence unavailable")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSavedSettings applies previously saved tuning over the current
// configuration.
func LoadSavedSettings() {
	if gdataManager == nil {
		return
	}
	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		persistLog.Warn().Err(err).Msg("could not load saved settings")
		return
	}
	if data == nil {
		return
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		persistLog.Warn().Err(err).Msg("could not parse saved settings")
		return
	}

	cfg.Movement = saved.Movement
	cfg.Movement.Clamp()
}

// SaveSettings writes the current tuning to the store.
func SaveSettings() {
	if gdataManager == nil {
		return
	}
	data, err := json.Marshal(SavedSettings{Movement: cfg.Movement})
	if err != nil {
		persistLog.Warn().Err(err).Msg("could not serialize settings")
		return
	}
	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		persistLog.Warn().Err(err).Msg("could not save settings")
	}
}
