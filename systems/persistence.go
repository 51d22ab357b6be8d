package systems

import (
	"encoding/json"

	"github.com/automoto/scrollctl/easing"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const preferencesKey = "preferences"

// SavedPreferences represents the scroll preferences stored on disk
type SavedPreferences struct {
	Mode          string        `json:"mode"`
	Easing        easing.Preset `json:"easing"`
	SpeedFactor   float64       `json:"speedFactor"`
	SnapThreshold float64       `json:"snapThreshold"`
}

var gdataManager *gdata.Manager

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used by the systems package.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadPreferences loads preferences from disk. It returns nil without an
// error when nothing was saved yet.
func LoadPreferences() (*SavedPreferences, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		logger.WithError(err).Warn("could not load preferences")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		logger.WithError(err).Warn("could not parse saved preferences")
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		logger.WithError(err).Warn("could not serialize preferences")
		return err
	}

	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		logger.WithError(err).Warn("could not save preferences")
		return err
	}
	return nil
}
