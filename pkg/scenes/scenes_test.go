package scenes

import (
	"image"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/game/gametest"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/modules"
)

var testView = image.Rect(0, 0, 800, 480)

type switchLicense struct {
	trial bool
}

func (l *switchLicense) IsTrial() bool { return l.trial }

type fakeMarketplace struct {
	launches int
}

func (m *fakeMarketplace) Launch() { m.launches++ }

// fakeClock 可手动设置的时钟
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type testEnv struct {
	*modules.Env
	props       *gametest.Props
	license     *switchLicense
	events      *gametest.Analytics
	marketplace *fakeMarketplace
}

func newTestEnv(t *testing.T, trial bool) *testEnv {
	t.Helper()
	te := &testEnv{
		props:       gametest.NewProps(),
		license:     &switchLicense{trial: trial},
		events:      &gametest.Analytics{},
		marketplace: &fakeMarketplace{},
	}
	session := game.NewSession(te.license)
	session.ChangeGameState(game.StateMenu, false)
	te.Env = &modules.Env{
		Assets:      gametest.Assets(trial),
		Loader:      gametest.NewLoader(),
		Session:     session,
		Options:     game.NewOptionsStore(te.props),
		Statistics:  game.NewStatisticsStore(te.props),
		Board:       game.NewBoard(te.props),
		Analytics:   te.events,
		Marketplace: te.marketplace,
		Clipboard:   func(string) error { return nil },
	}
	return te
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// tapOn 构造一个在 r 中心松开触点的帧
func tapOn(r image.Rectangle) input.Frame {
	return input.Tap((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
