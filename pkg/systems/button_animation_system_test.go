package systems

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/ecs"
	"github.com/decker502/spider/pkg/utils"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestAnimationSystem() (*ButtonAnimationSystem, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	return NewButtonAnimationSystem(ecs.NewEntityManager(), clock.Now), clock
}

func hiddenButton() *components.ImageButton {
	b := components.NewImageButton(nil, image.Rect(0, 0, 50, 20))
	b.Visible = false
	b.Enabled = false
	return b
}

func TestButtonAnimationStartMakesVisible(t *testing.T) {
	sys, _ := newTestAnimationSystem()
	b := hiddenButton()

	sys.Start(b, image.Pt(0, 0), image.Pt(0, 0), 0, 1, 300*time.Millisecond)

	if !b.Visible {
		t.Error("button should be visible right after Start")
	}
	if b.Enabled {
		t.Error("button should stay disabled until the animation completes")
	}
	if sys.Active() != 1 {
		t.Errorf("Active() = %d, want 1", sys.Active())
	}
}

func TestButtonAnimationEndpoints(t *testing.T) {
	const d = 300 * time.Millisecond
	tint := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	tests := []struct {
		name        string
		elapsed     time.Duration
		wantPos     image.Point
		wantOpacity float64
		wantRunning bool
	}{
		{"at start", 0, image.Pt(10, 100), 0.2, true},
		{"half way", d / 2, image.Pt(60, 50), 0.6, true},
		{"at duration", d, image.Pt(110, 0), 1.0, false},
		{"past duration", 2 * d, image.Pt(110, 0), 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, clock := newTestAnimationSystem()
			b := hiddenButton()
			b.Color = tint

			sys.Start(b, image.Pt(10, 100), image.Pt(110, 0), 0.2, 1.0, d)
			clock.Advance(tt.elapsed)
			finished := sys.Update()

			if b.Rect.Min != tt.wantPos {
				t.Errorf("position = %v, want %v", b.Rect.Min, tt.wantPos)
			}
			if b.Rect.Size() != image.Pt(50, 20) {
				t.Errorf("size changed to %v", b.Rect.Size())
			}
			if want := utils.ScaleColor(tint, tt.wantOpacity); b.Color != want {
				t.Errorf("colour = %v, want %v", b.Color, want)
			}
			if running := finished == 0; running != tt.wantRunning {
				t.Errorf("running = %v, want %v", running, tt.wantRunning)
			}
			if b.Enabled != !tt.wantRunning {
				t.Errorf("Enabled = %v, want %v", b.Enabled, !tt.wantRunning)
			}
		})
	}
}

func TestButtonAnimationRetiresFinished(t *testing.T) {
	sys, clock := newTestAnimationSystem()
	short, long := hiddenButton(), hiddenButton()

	sys.Start(short, image.Pt(0, 0), image.Pt(0, 0), 0, 1, 100*time.Millisecond)
	sys.Start(long, image.Pt(0, 0), image.Pt(0, 0), 0, 1, 500*time.Millisecond)

	clock.Advance(200 * time.Millisecond)
	if n := sys.Update(); n != 1 {
		t.Fatalf("Update() finished %d, want 1", n)
	}
	if sys.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", sys.Active())
	}
	if !short.Enabled || long.Enabled {
		t.Errorf("short.Enabled=%v long.Enabled=%v", short.Enabled, long.Enabled)
	}

	clock.Advance(time.Second)
	sys.Update()
	if sys.Active() != 0 {
		t.Errorf("Active() = %d after all finished", sys.Active())
	}
	if !long.Enabled {
		t.Error("long animation did not enable its button")
	}
}

func TestButtonAnimationForcesEnabled(t *testing.T) {
	sys, clock := newTestAnimationSystem()
	b := hiddenButton()
	b.Enabled = true

	sys.Start(b, image.Pt(0, 0), image.Pt(5, 5), 1, 1, 0)
	b.Enabled = false
	clock.Advance(time.Nanosecond)
	sys.Update()

	if !b.Enabled {
		t.Error("completed animation must leave the button enabled")
	}
	if b.Rect.Min != image.Pt(5, 5) {
		t.Errorf("position = %v, want (5,5)", b.Rect.Min)
	}
}

func TestButtonAnimationRecolor(t *testing.T) {
	const d = 300 * time.Millisecond
	dim := color.RGBA{R: 105, G: 105, B: 105, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	t.Run("running", func(t *testing.T) {
		sys, clock := newTestAnimationSystem()
		b := hiddenButton()
		b.Color = dim
		other := hiddenButton()
		other.Color = dim

		sys.Start(b, image.Pt(0, 0), image.Pt(0, 0), 0, 1, d)
		sys.Start(other, image.Pt(0, 0), image.Pt(0, 0), 0, 1, d)
		clock.Advance(d / 2)
		sys.Update()

		sys.Recolor(b, white)
		if b.Color == white {
			t.Error("recolour jumped to full opacity mid-fade")
		}

		clock.Advance(d)
		sys.Update()
		if b.Color != white {
			t.Errorf("colour = %v after the fade, want %v", b.Color, white)
		}
		if other.Color != dim {
			t.Errorf("other button colour = %v, want %v", other.Color, dim)
		}
	})

	t.Run("idle", func(t *testing.T) {
		sys, _ := newTestAnimationSystem()
		b := hiddenButton()
		b.Color = dim
		sys.Recolor(b, white)
		if b.Color != white {
			t.Errorf("colour = %v, want %v", b.Color, white)
		}
	})
}
