package systems

import (
	"image"
	"testing"

	"github.com/decker502/spider/pkg/components"
	"github.com/decker502/spider/pkg/render/rendertest"
)

func TestDispatchRelease(t *testing.T) {
	var clicked []string
	mk := func(name string, rect image.Rectangle) *components.ImageButton {
		b := components.NewImageButton(nil, rect)
		b.OnClick = func(components.Button) { clicked = append(clicked, name) }
		return b
	}

	first := mk("first", image.Rect(0, 0, 100, 100))
	second := mk("second", image.Rect(0, 0, 100, 100))
	disabled := mk("disabled", image.Rect(200, 0, 300, 100))
	disabled.Enabled = false
	silent := components.NewImageButton(nil, image.Rect(400, 0, 500, 100))

	buttons := []components.Button{first, second, disabled, silent}

	tests := []struct {
		name     string
		pt       image.Point
		consumed bool
		want     []string
	}{
		{"first match in declaration order wins", image.Pt(50, 50), true, []string{"first"}},
		{"disabled buttons are skipped", image.Pt(250, 50), false, nil},
		{"button without handler still consumes", image.Pt(450, 50), true, nil},
		{"miss", image.Pt(900, 900), false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clicked = nil
			if got := DispatchRelease(buttons, tt.pt); got != tt.consumed {
				t.Errorf("DispatchRelease() = %v, want %v", got, tt.consumed)
			}
			if len(clicked) != len(tt.want) {
				t.Fatalf("clicked = %v, want %v", clicked, tt.want)
			}
			for i := range clicked {
				if clicked[i] != tt.want[i] {
					t.Errorf("clicked = %v, want %v", clicked, tt.want)
				}
			}
		})
	}
}

func TestDrawButtons(t *testing.T) {
	s := rendertest.NewSurface(100, 100)
	tex := rendertest.NewTexture("t", 1, 1)
	visible := components.NewImageButton(tex, image.Rect(0, 0, 10, 10))
	hidden := components.NewImageButton(tex, image.Rect(0, 0, 10, 10))
	hidden.Visible = false

	DrawButtons(s, []components.Button{visible, hidden})

	if len(s.Ops) != 1 {
		t.Errorf("drew %d ops, want 1", len(s.Ops))
	}
}
