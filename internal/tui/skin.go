package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/openadas/adas-display/internal/model"
)

// Skin defines the display palette. Values are hex colors as understood by
// lipgloss. Missing fields keep their defaults.
type Skin struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
	Warn       string `yaml:"warn"`
	Alert      string `yaml:"alert"`
}

// defaultSkin mirrors the original unit's dark theme.
func defaultSkin() Skin {
	return Skin{
		Background: "#1a1a1a",
		Foreground: "#e0e0e0",
		Muted:      "#6b6b6b",
		Accent:     "#00d0a1",
		Warn:       "#ffaa00",
		Alert:      "#ff4444",
	}
}

var (
	titleStyle  lipgloss.Style
	speedStyle  lipgloss.Style
	okStyle     lipgloss.Style
	warnStyle   lipgloss.Style
	alertStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	statusStyle lipgloss.Style
	chartStyle  lipgloss.Style
	helpStyle   lipgloss.Style
)

func init() {
	applySkin(defaultSkin())
}

func applySkin(sk Skin) {
	fg := lipgloss.Color(sk.Foreground)
	accent := lipgloss.Color(sk.Accent)
	warn := lipgloss.Color(sk.Warn)
	alert := lipgloss.Color(sk.Alert)
	muted := lipgloss.Color(sk.Muted)
	bg := lipgloss.Color(sk.Background)

	titleStyle = lipgloss.NewStyle().Foreground(fg).Bold(true)
	speedStyle = lipgloss.NewStyle().Foreground(fg).Bold(true).Padding(1, 4)
	okStyle = lipgloss.NewStyle().Foreground(fg)
	warnStyle = lipgloss.NewStyle().Foreground(warn).Bold(true)
	alertStyle = lipgloss.NewStyle().Foreground(alert).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)
	statusStyle = lipgloss.NewStyle().Foreground(fg).Background(bg)
	chartStyle = lipgloss.NewStyle().Foreground(accent).Background(accent)
	helpStyle = lipgloss.NewStyle().Foreground(muted)
}

// InitializeSkin applies the named skin, looked up as
// <configDir>/skins/<name>.yml. The empty name and "default" select the
// built-in palette. On any error the default palette stays active.
func InitializeSkin(name, configDir string) error {
	if name == "" || name == model.DefaultSkin {
		applySkin(defaultSkin())
		return nil
	}

	data, err := os.ReadFile(filepath.Join(configDir, "skins", name+".yml"))
	if err != nil {
		applySkin(defaultSkin())
		return fmt.Errorf("reading skin %q: %w", name, err)
	}

	sk := defaultSkin()
	if err := yaml.Unmarshal(data, &sk); err != nil {
		applySkin(defaultSkin())
		return fmt.Errorf("parsing skin %q: %w", name, err)
	}

	applySkin(sk)
	return nil
}
