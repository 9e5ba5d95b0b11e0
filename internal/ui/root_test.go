package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/udimtools/udim-mover/internal/host"
	"github.com/udimtools/udim-mover/internal/mover"
)

func newTestRootUI(t *testing.T) (*RootUI, *mover.Service) {
	t.Helper()

	a := test.NewApp()
	w := a.NewWindow("test")

	h := host.NewMemoryHost()
	h.AddShell("body", 0.5, 0.5)
	if err := h.Select("body"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	svc := mover.NewService(h)

	return NewRootUI(w, a, svc), svc
}

func TestRootUI_JumpEntryRejectsInvalidTile(t *testing.T) {
	ui, svc := newTestRootUI(t)

	for _, input := range []string{"10a1", "999", "  "} {
		ui.jumpEntry.SetText(input)
		ui.onJumpSubmit()

		if !strings.Contains(ui.statusLabel.Text, ui.localization.GetText(KeyInvalidTile)) {
			t.Errorf("status after %q = %q, expected invalid-tile message", input, ui.statusLabel.Text)
		}
	}
	if moves := svc.Moves(); len(moves) != 0 {
		t.Errorf("invalid entries should not issue moves, history has %d", len(moves))
	}
}
