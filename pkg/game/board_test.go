package game_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/game/gametest"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewDeck(t *testing.T) {
	for _, suits := range []int{1, 2, 4} {
		deck := game.NewDeck(suits, newRand())
		if len(deck) != game.DeckSize {
			t.Fatalf("suits=%d: %d cards, want %d", suits, len(deck), game.DeckSize)
		}

		perSuit := make(map[game.Suit]int)
		for _, c := range deck {
			perSuit[c.Suit]++
			if c.Visible {
				t.Errorf("suits=%d: new card is face up", suits)
			}
		}
		if len(perSuit) != suits {
			t.Errorf("suits=%d: deck has %d suits", suits, len(perSuit))
		}
		for s, n := range perSuit {
			if n != game.DeckSize/suits {
				t.Errorf("suits=%d: %v has %d cards", suits, s, n)
			}
		}

		if !sort.SliceIsSorted(deck, func(i, j int) bool { return deck[i].ShuffleKey < deck[j].ShuffleKey }) {
			t.Errorf("suits=%d: deck is not ordered by shuffle key", suits)
		}
	}
}

func TestDeal(t *testing.T) {
	b := game.NewBoard(nil)
	b.SetSuitCount(2)
	d := b.Deal(newRand())

	if d.SuitCount != 2 {
		t.Errorf("SuitCount = %d, want 2", d.SuitCount)
	}
	if len(d.Columns) != game.ColumnCount {
		t.Fatalf("%d columns, want %d", len(d.Columns), game.ColumnCount)
	}
	dealt := 0
	for i, col := range d.Columns {
		want := 5
		if i < 4 {
			want = 6
		}
		if len(col) != want {
			t.Errorf("column %d has %d cards, want %d", i, len(col), want)
		}
		for j, c := range col {
			if c.Visible != (j == len(col)-1) {
				t.Errorf("column %d card %d visible = %v", i, j, c.Visible)
			}
		}
		dealt += len(col)
	}
	if dealt != game.DealtCards {
		t.Errorf("dealt %d cards, want %d", dealt, game.DealtCards)
	}
	if len(d.Stock) != game.DeckSize-game.DealtCards {
		t.Errorf("stock has %d cards", len(d.Stock))
	}
}

func TestSetSuitCount(t *testing.T) {
	props := gametest.NewProps()
	b := game.NewBoard(props)
	if b.SuitCount() != 1 {
		t.Errorf("default SuitCount() = %d, want 1", b.SuitCount())
	}

	b.SetSuitCount(3)
	if b.SuitCount() != 1 {
		t.Errorf("invalid suit count accepted: %d", b.SuitCount())
	}

	b.SetSuitCount(4)
	if got := game.NewBoard(props).SuitCount(); got != 4 {
		t.Errorf("persisted SuitCount() = %d, want 4", got)
	}
}

func TestSaveResumeClear(t *testing.T) {
	m := openGdata(t, "spider_board_test")

	b := game.NewBoard(m)
	if b.ResumeGameExists() {
		t.Fatal("fresh board has a saved game")
	}

	d := b.Deal(newRand())
	d.Elapsed = 42
	if err := b.Save(d); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reopened := game.NewBoard(m)
	if !reopened.ResumeGameExists() {
		t.Fatal("saved game not found after reopen")
	}
	saved := reopened.LoadSaved()
	if saved.Elapsed != 42 || len(saved.Columns) != game.ColumnCount {
		t.Errorf("saved deal = elapsed %d, %d columns", saved.Elapsed, len(saved.Columns))
	}
	top := saved.Columns[0][len(saved.Columns[0])-1]
	orig := d.Columns[0][len(d.Columns[0])-1]
	if top.Suit != orig.Suit || top.Value != orig.Value || !top.Visible {
		t.Errorf("restored card %v %v visible=%v, want %v %v visible", top.Suit, top.Value, top.Visible, orig.Suit, orig.Value)
	}

	if err := reopened.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if game.NewBoard(m).ResumeGameExists() {
		t.Error("cleared game is still resumable")
	}
}

func TestCard(t *testing.T) {
	c := game.NewCard(game.Heart, game.Queen, newRand())
	if c.Visible {
		t.Error("new card is face up")
	}
	c.Reveal()
	c.Reveal()
	if !c.Visible {
		t.Error("Reveal() did not turn the card face up")
	}

	cp := game.CopyCard(c)
	if cp.Suit != game.Heart || cp.Value != game.Queen || !cp.Visible {
		t.Errorf("CopyCard() = %+v", cp)
	}
	if cp.ShuffleKey != 0 {
		t.Error("CopyCard() carried the shuffle key")
	}
	if c.Suit.String() != "Heart" || c.Value.String() != "Q" {
		t.Errorf("String() = %s %s", c.Suit, c.Value)
	}
}

func TestSession(t *testing.T) {
	s := game.NewSession(game.FixedLicense(true))
	if s.State() != game.StateLoading {
		t.Errorf("initial state = %v", s.State())
	}
	if !s.IsTrial() {
		t.Error("IsTrial() = false for trial license")
	}

	var got []game.GameState
	s.SetListener(func(state game.GameState, resume bool) {
		got = append(got, state)
	})
	s.ChangeGameState(game.StateMenu, true)
	if s.Resume() {
		t.Error("resume flag kept for a non-playing state")
	}
	s.ChangeGameState(game.StatePlaying, true)
	if !s.Resume() {
		t.Error("resume flag lost")
	}
	if len(got) != 2 || got[1] != game.StatePlaying {
		t.Errorf("listener saw %v", got)
	}

	if s.ExitRequested() {
		t.Error("exit requested too early")
	}
	s.RequestExit()
	if !s.ExitRequested() {
		t.Error("RequestExit() not recorded")
	}
}

func TestStoredLicense(t *testing.T) {
	props := gametest.NewProps()
	lic := game.StoredLicense{Props: props}
	s := game.NewSession(lic)
	if !s.IsTrial() {
		t.Fatal("no unlock flag should mean trial")
	}

	if err := lic.Unlock(); err != nil {
		t.Fatalf("Unlock() error: %v", err)
	}
	if !s.IsTrial() {
		t.Error("trial flag changed before refresh")
	}
	s.RefreshTrialStatus()
	if s.IsTrial() {
		t.Error("trial flag not cleared after unlock")
	}

	if game.NewSession(nil).IsTrial() {
		t.Error("nil license should be a full version")
	}
}
