package modules

import (
	"image"
	"testing"

	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/game/gametest"
)

var testView = image.Rect(0, 0, 800, 480)

// switchLicense 是可以在测试中途解锁的授权
type switchLicense struct {
	trial  bool
	checks int
}

func (l *switchLicense) IsTrial() bool {
	l.checks++
	return l.trial
}

// fakeMarketplace 统计打开次数
type fakeMarketplace struct {
	launches int
}

func (m *fakeMarketplace) Launch() { m.launches++ }

type testEnv struct {
	*Env
	props       *gametest.Props
	license     *switchLicense
	analytics   *gametest.Analytics
	marketplace *fakeMarketplace
	copied      []string
}

func newTestEnv(t *testing.T, trial bool) *testEnv {
	t.Helper()
	te := &testEnv{
		props:       gametest.NewProps(),
		license:     &switchLicense{trial: trial},
		analytics:   &gametest.Analytics{},
		marketplace: &fakeMarketplace{},
	}
	te.Env = &Env{
		Assets:      gametest.Assets(trial),
		Loader:      gametest.NewLoader(),
		Session:     game.NewSession(te.license),
		Options:     game.NewOptionsStore(te.props),
		Statistics:  game.NewStatisticsStore(te.props),
		Board:       game.NewBoard(te.props),
		Analytics:   te.analytics,
		Marketplace: te.marketplace,
		Clipboard: func(s string) error {
			te.copied = append(te.copied, s)
			return nil
		},
	}
	return te
}

// inside 返回 r 内部的一个点
func inside(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestSubViewsAreClosed(t *testing.T) {
	te := newTestEnv(t, false)
	views := []SubView{
		NewStatisticsView(te.Env, testView),
		NewOptionsView(te.Env, testView),
		NewAboutView(te.Env, testView),
	}
	for _, v := range views {
		if v.HasOverlay() {
			t.Errorf("%T starts with an overlay", v)
		}
	}
}
