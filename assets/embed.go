package assets

import (
	"bytes"
	"embed"
	"path/filepath"
	"strings"

	"github.com/milk9111/minimapicons/minimap"
)

const (
	AlertsFile   = "new_mod_alerts.txt"
	SettingsFile = "minimap.yaml"
)

//go:embed *.txt *.yaml
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// DefaultAlerts parses the embedded alert config.
func DefaultAlerts() (minimap.Alerts, error) {
	b, err := LoadFile(AlertsFile)
	if err != nil {
		return nil, err
	}
	return minimap.ParseAlerts(bytes.NewReader(b))
}

// DefaultSettings reads the embedded settings file.
func DefaultSettings() (*minimap.SettingsStore, error) {
	b, err := LoadFile(SettingsFile)
	if err != nil {
		return nil, err
	}
	return minimap.ReadSettings(bytes.NewReader(b))
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
