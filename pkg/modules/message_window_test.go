package modules

import (
	"testing"

	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/input"
	"github.com/decker502/spider/pkg/render/rendertest"
)

func TestMessageWindowLayout(t *testing.T) {
	te := newTestEnv(t, false)
	w := NewMessageWindow(testView, "hi", te.Assets)

	// 消息字体为 8x16："hi" 为 16x16，居中，内边距 15%
	if got := w.Text(); got != "hi" {
		t.Errorf("Text() = %q, want %q", got, "hi")
	}
	b := w.Bounds()
	if b.Min.X != 390 || b.Min.Y != 230 || b.Max.X != 410 || b.Max.Y != 250 {
		t.Errorf("Bounds() = %v, want (390,230)-(410,250)", b)
	}
}

func TestMessageWindowUpdate(t *testing.T) {
	te := newTestEnv(t, false)

	tests := []struct {
		name     string
		frame    func(w *MessageWindow) input.Frame
		wantOpen bool
		wantTaps int
	}{
		{
			name:     "no input",
			frame:    func(*MessageWindow) input.Frame { return input.Frame{} },
			wantOpen: true,
		},
		{
			name:     "tap outside",
			frame:    func(*MessageWindow) input.Frame { return input.Tap(5, 5) },
			wantOpen: true,
		},
		{
			name: "tap inside",
			frame: func(w *MessageWindow) input.Frame {
				pt := inside(w.Bounds())
				return input.Tap(pt.X, pt.Y)
			},
			wantOpen: false,
			wantTaps: 1,
		},
		{
			name: "press inside is not a tap",
			frame: func(w *MessageWindow) input.Frame {
				return input.Frame{Touches: []input.Touch{{Position: inside(w.Bounds()), State: input.TouchPressed}}}
			},
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps := 0
			w := NewMessageWindow(testView, config.VersionCopied, te.Assets)
			w.OnClick = func() { taps++ }
			if got := w.Update(tt.frame(w)); got != tt.wantOpen {
				t.Errorf("Update() = %v, want %v", got, tt.wantOpen)
			}
			if taps != tt.wantTaps {
				t.Errorf("OnClick ran %d times, want %d", taps, tt.wantTaps)
			}
		})
	}
}

func TestTrialWindow(t *testing.T) {
	te := newTestEnv(t, true)
	w := NewTrialWindow(testView, config.DisabledInTrial, te.Env)

	if !w.Update(input.Frame{}) {
		t.Fatal("trial window closed while still in trial")
	}
	pt := inside(w.Bounds())
	if w.Update(input.Tap(pt.X, pt.Y)) {
		t.Error("trial window stayed open after a tap")
	}
	if te.marketplace.launches != 1 {
		t.Errorf("marketplace launched %d times, want 1", te.marketplace.launches)
	}

	w = NewTrialWindow(testView, config.DisabledInTrial, te.Env)
	te.license.trial = false
	if w.Update(input.Frame{}) {
		t.Error("trial window stayed open after unlock")
	}
	if te.marketplace.launches != 1 {
		t.Errorf("unlock dismissal launched the marketplace")
	}
}

func TestTrialWindowPollsLicenseSparingly(t *testing.T) {
	te := newTestEnv(t, true)
	w := NewTrialWindow(testView, config.DisabledInTrial, te.Env)
	before := te.license.checks

	// 第一帧会查询，间隔内的其余帧不查询
	for i := range config.TrialPollFrames - 1 {
		if !w.Update(input.Frame{}) {
			t.Fatalf("closed at frame %d while still in trial", i)
		}
	}
	if got := te.license.checks - before; got != 1 {
		t.Errorf("license checked %d times, want 1", got)
	}

	te.license.trial = false
	if !w.Update(input.Frame{}) {
		t.Fatal("closed between polls")
	}
	if w.Update(input.Frame{}) {
		t.Error("still open after the poll following unlock")
	}
	if got := te.license.checks - before; got != 2 {
		t.Errorf("license checked %d times, want 2", got)
	}
}

func TestMessageWindowRender(t *testing.T) {
	te := newTestEnv(t, false)
	w := NewMessageWindow(testView, "hi", te.Assets)
	s := rendertest.NewSurface(800, 480)
	w.Render(s)

	if !s.Balanced() {
		t.Error("unbalanced batch")
	}
	scrim := s.TextureOps(te.Assets.Board.Blank)
	if len(scrim) != 1 || scrim[0].Dst != testView {
		t.Fatalf("scrim ops = %+v, want one over the view", scrim)
	}
	if scrim[0].Tint.A != 204 {
		t.Errorf("scrim alpha = %d, want 204", scrim[0].Tint.A)
	}
	if bg := s.TextureOps(te.Assets.Message.Background); len(bg) != 1 || bg[0].Dst != w.Bounds() {
		t.Errorf("background ops = %+v, want one over the panel", bg)
	}
	if !s.HasText("hi") {
		t.Error("text not drawn")
	}
}
