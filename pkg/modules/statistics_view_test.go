package modules

import (
	"testing"
	"time"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/render/rendertest"
)

func TestWinRate(t *testing.T) {
	tests := []struct {
		won, total int
		want       string
	}{
		{0, 0, "0%"},
		{0, 3, "0%"},
		{1, 3, "33%"},
		{2, 3, "66%"},
		{5, 5, "100%"},
	}
	for _, tt := range tests {
		if got := WinRate(tt.won, tt.total); got != tt.want {
			t.Errorf("WinRate(%d, %d) = %s, want %s", tt.won, tt.total, got, tt.want)
		}
	}
}

func TestFormatPlayTime(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{86400 + 3600 + 5, "1.01:00:05"},
		{-4, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatPlayTime(tt.seconds); got != tt.want {
			t.Errorf("FormatPlayTime(%d) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}

func seedStatistics(t *testing.T, te *testEnv) {
	t.Helper()
	s := game.NewStatisticsStore(te.props)
	s.RecordGame(1, true, 90*time.Second)
	s.RecordGame(2, false, 30*time.Second)
	s.RecordGame(4, true, time.Minute)
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
}

func TestStatisticsViewLoadsOnConstruction(t *testing.T) {
	te := newTestEnv(t, false)
	seedStatistics(t, te)

	v := NewStatisticsView(te.Env, testView)
	surface := rendertest.NewSurface(800, 480)
	v.Render(surface, testView)

	if !surface.HasText(FormatPlayTime(180)) {
		t.Errorf("total time not shown, texts = %v", surface.Texts())
	}
	if !surface.HasText("100%") {
		t.Errorf("easy win rate not shown, texts = %v", surface.Texts())
	}
	// 标题 + 3 行 x（标签 + 3 个单元格）+ 总计标签 + 总计值
	texts := len(surface.Texts())
	if want := 1 + 3*4 + 2 + 1; texts != want {
		t.Errorf("drew %d strings, want %d", texts, want)
	}
	if icons := len(surface.TextureOps(te.Assets.Statistics.Suits[game.Spade])); icons != 3 {
		t.Errorf("spade icon drawn %d times, want 3", icons)
	}
}

func TestStatisticsViewReset(t *testing.T) {
	te := newTestEnv(t, false)
	seedStatistics(t, te)
	v := NewStatisticsView(te.Env, testView)
	before := v.Labels()

	pt := inside(v.ResetButton().Rect)
	v.Update(input.Tap(pt.X, pt.Y))

	if got := te.Statistics.Stats(); got != (game.Statistics{}) {
		t.Errorf("Stats() after reset = %+v, want zero", got)
	}
	reloaded := game.NewStatisticsStore(te.props)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if reloaded.Stats() != (game.Statistics{}) {
		t.Errorf("saved statistics = %+v, want zero", reloaded.Stats())
	}
	if kinds := te.analytics.Kinds(); len(kinds) != 1 || kinds[0] != game.EventResetStatistics {
		t.Errorf("analytics = %v, want [ResetStatistics]", kinds)
	}

	after := v.Labels()
	if len(after) != len(before) || &after[0] == &before[0] {
		t.Error("labels were not rebuilt")
	}
	surface := rendertest.NewSurface(800, 480)
	v.Render(surface, testView)
	if !surface.HasText(FormatPlayTime(0)) {
		t.Errorf("reset time not shown, texts = %v", surface.Texts())
	}
}

func TestStatisticsViewIgnoresTapsElsewhere(t *testing.T) {
	te := newTestEnv(t, false)
	seedStatistics(t, te)
	v := NewStatisticsView(te.Env, testView)

	v.Update(input.Tap(1, 1))
	if te.Statistics.Stats().EasyGames != 1 {
		t.Error("a tap outside the reset button changed the statistics")
	}
	if !v.ResetButton().Visible || v.ResetButton().Text != config.StatsResetButton {
		t.Error("reset button not set up")
	}
}
