package gameplay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	engineinput "tilegrid/pkg/engine/input"
	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/state"
	"tilegrid/pkg/game/tiles"
)

// makeGame creates a Game over a 2x2 board:
//
//	A B
//	A A
func makeGame(t *testing.T) *state.Game {
	t.Helper()
	grid, err := world.NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	board, err := tiles.NewBoard(grid, tiles.PaletteOf("A", "B"), []tiles.Type{"A", "B", "A", "A"})
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	return state.NewGame(board)
}

func TestProcessAction_SelectWithoutCursor(t *testing.T) {
	g := makeGame(t)
	if ev, ok := ProcessAction(g, engineinput.ActionSelect); ok {
		t.Errorf("ProcessAction(Select) with no cursor = %s, true, want false", ev)
	}
}

func TestProcessAction_CursorThenSelect(t *testing.T) {
	g := makeGame(t)
	ev, ok := ProcessAction(g, engineinput.ActionCursorDown)
	if !ok || ev.String() != "enter(0)" {
		t.Fatalf("first cursor move = %s, %v, want enter(0), true", ev, ok)
	}
	ev, ok = ProcessAction(g, engineinput.ActionCursorDown)
	if !ok || ev.String() != "enter(2)" {
		t.Fatalf("cursor down = %s, %v, want enter(2), true", ev, ok)
	}
	ev, ok = ProcessAction(g, engineinput.ActionSelect)
	if !ok || ev.String() != "click(2)" || ev.Device != engineinput.DeviceKeyboard {
		t.Errorf("select = %s (device %d), %v, want keyboard click(2)", ev, ev.Device, ok)
	}
}

func TestProcessAction_ClearAndQuit(t *testing.T) {
	g := makeGame(t)
	if ev, ok := ProcessAction(g, engineinput.ActionClearPreview); !ok || ev.Kind != engineinput.EventLeave {
		t.Errorf("ProcessAction(ClearPreview) = %s, %v, want leave(), true", ev, ok)
	}
	if _, ok := ProcessAction(g, engineinput.ActionQuit); ok {
		t.Error("ProcessAction(Quit) produced an event")
	}
	if !g.QuitRequested() {
		t.Error("ProcessAction(Quit) did not request quit")
	}
	if _, ok := ProcessAction(g, engineinput.ActionZoomIn); ok {
		t.Error("ProcessAction(ZoomIn) produced an event")
	}
}

func TestRun_AppliesInArrivalOrder(t *testing.T) {
	g := makeGame(t)
	q := engineinput.NewQueue(8)
	for _, ev := range []engineinput.Event{
		engineinput.Click(1),
		engineinput.Enter(1),
		engineinput.Click(0),
		engineinput.Enter(3),
		engineinput.Click(9), // out of range, skipped
		engineinput.Leave(),
		engineinput.Enter(1),
	} {
		q.Push(ev)
	}
	q.Close()

	if err := Run(context.Background(), g, q); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	snap := g.Snapshot()
	if diff := cmp.Diff([]int{0, 2, 3}, snap.Layers.Selected().Indices()); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, snap.Layers.Preview().Indices()); diff != "" {
		t.Errorf("preview mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_FullQueueEndsWithLeave(t *testing.T) {
	g := makeGame(t)
	q := engineinput.NewQueue(engineinput.DefaultQueueSize)
	q.Push(engineinput.Click(0))
	for i := 0; i < engineinput.DefaultQueueSize; i++ {
		q.Push(engineinput.Enter(i % 4))
	}
	q.Push(engineinput.Leave())
	q.Close()

	if err := Run(context.Background(), g, q); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	snap := g.Snapshot()
	if !snap.Layers.Preview().IsEmpty() {
		t.Errorf("preview = %v after a trailing leave, want empty", snap.Layers.Preview().Indices())
	}
	if !snap.Layers.Selected().Has(0) {
		t.Errorf("selected = %v, want the clicked region kept", snap.Layers.Selected().Indices())
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	g := makeGame(t)
	q := engineinput.NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, g, q) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
