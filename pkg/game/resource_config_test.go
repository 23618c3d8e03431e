package game

import (
	"slices"
	"testing"

	"github.com/decker502/spider/pkg/config"
)

func TestParseResourceConfig(t *testing.T) {
	data := []byte(`
version: 1
theme_packs: [Original, Dark]
fonts:
  menu:
    file: fonts/Menu.ttf
    size: 36
  statistics:
    size: 18
`)
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig() error: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if !slices.Equal(cfg.ThemePacks, []string{"Original", "Dark"}) {
		t.Errorf("ThemePacks = %v", cfg.ThemePacks)
	}
	if got := cfg.Fonts[FontMenu]; got.File != "fonts/Menu.ttf" || got.Size != 36 {
		t.Errorf("menu font = %+v", got)
	}
	if got := cfg.Fonts[FontStatistics]; got.File != "" || got.Size != 18 {
		t.Errorf("statistics font = %+v", got)
	}
	if cfg.ThemeIndex("Dark") != 1 || cfg.ThemeIndex("Modern") != -1 {
		t.Errorf("ThemeIndex() wrong: Dark=%d Modern=%d", cfg.ThemeIndex("Dark"), cfg.ThemeIndex("Modern"))
	}
}

func TestParseResourceConfigDefaults(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("ParseResourceConfig() error: %v", err)
	}
	if !slices.Equal(cfg.ThemePacks, config.DefaultThemePacks) {
		t.Errorf("ThemePacks = %v, want defaults", cfg.ThemePacks)
	}
	if cfg.Fonts == nil {
		t.Error("Fonts is nil")
	}

	cfg.ThemePacks[0] = "Changed"
	if config.DefaultThemePacks[0] == "Changed" {
		t.Error("defaults were aliased")
	}
}

func TestParseResourceConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "theme_packs: [Original"},
		{"empty theme name", "theme_packs: [Original, \"\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseResourceConfig([]byte(tt.data)); err == nil {
				t.Error("ParseResourceConfig() error = nil")
			}
		})
	}
}
