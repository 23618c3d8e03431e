package game_test

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/game/gametest"
)

func checkManifest() *game.ResourceConfig {
	fonts := make(map[string]game.FontSpec)
	for _, id := range []string{
		game.FontMenu, game.FontMenuSub, game.FontMenuTrialDetail, game.FontMenuBackground,
		game.FontStatistics, game.FontAbout, game.FontAgain,
	} {
		fonts[id] = game.FontSpec{Size: 18}
	}
	fonts[game.FontMessage] = game.FontSpec{File: "go:regular", Size: 20}
	fonts[game.FontWin] = game.FontSpec{File: "fonts/Win.ttf", Size: 40}
	return &game.ResourceConfig{
		Version:    1,
		ThemePacks: []string{"Original", "Dark"},
		Fonts:      fonts,
	}
}

// completeAssets 为任意主题加载的每个纹理放一个空文件
func completeAssets(t *testing.T, cfg *game.ResourceConfig) fstest.MapFS {
	t.Helper()
	files := fstest.MapFS{"fonts/Win.ttf": {}}
	for _, theme := range cfg.ThemePacks {
		l := gametest.NewLoader()
		a := game.NewAssets(cfg.ThemePacks, true)
		if err := a.Plan(func() string { return theme }).LoadAll(l, nil); err != nil {
			t.Fatalf("LoadAll(%s) error: %v", theme, err)
		}
		for _, name := range l.Textures {
			files[name] = &fstest.MapFile{}
		}
	}
	return files
}

func TestCheckAssetsComplete(t *testing.T) {
	cfg := checkManifest()
	missing, err := game.CheckAssets(completeAssets(t, cfg), cfg)
	if err != nil {
		t.Fatalf("CheckAssets() error: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestCheckAssetsReportsEverything(t *testing.T) {
	cfg := checkManifest()
	files := completeAssets(t, cfg)
	delete(files, "ThemePacks/Dark/Card/K.png")
	delete(files, "fonts/Win.ttf")
	delete(cfg.Fonts, game.FontAgain)

	missing, err := game.CheckAssets(files, cfg)
	if err != nil {
		t.Fatalf("CheckAssets() error: %v", err)
	}
	want := []string{"ThemePacks/Dark/Card/K.png", "font again", "fonts/Win.ttf"}
	if !slices.Equal(missing, want) {
		t.Errorf("missing = %v, want %v", missing, want)
	}
}
