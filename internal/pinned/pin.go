package pinned

import (
	"fmt"

	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
)

// Positions looks up the current floating position of a box
type Positions interface {
	Box(id string) (autoposition.Box, bool)
}

// Pin docks uid at the grid cell under its current floating position, so
// the window appears where the label was.
func Pin(store *annotation.Store, boxes Positions, uid string, panelWidth float64) error {
	if _, err := store.Get(uid); err != nil {
		return fmt.Errorf("pin: %w", err)
	}
	box, ok := boxes.Box(uid)
	if !ok {
		return fmt.Errorf("pin %s: %w", uid, autoposition.ErrUnknownBox)
	}
	if panelWidth <= 0 {
		return fmt.Errorf("pin %s: invalid panel width %v", uid, panelWidth)
	}

	col, row := gridlayout.DefaultConfig(panelWidth).CellAt(box.X, box.Y)
	return store.Update(uid, func(an *annotation.Settings) {
		an.GridPos = &annotation.GridPos{
			X: int(col),
			Y: int(row),
			W: gridlayout.DefaultWindowSpan,
			H: gridlayout.DefaultWindowSpan,
		}
		an.Display = annotation.DisplayWindow
	})
}

// Unpin turns the window of uid back into a floating label
func Unpin(store *annotation.Store, uid string) error {
	err := store.Update(uid, func(an *annotation.Settings) {
		an.GridPos = nil
		an.Display = annotation.DisplayLabel
	})
	if err != nil {
		return fmt.Errorf("unpin: %w", err)
	}
	return nil
}

// Hide closes the overlay element of uid. The dock cell is dropped with it,
// so showing the annotation again starts from a floating label.
func Hide(store *annotation.Store, uid string) error {
	err := store.Update(uid, func(an *annotation.Settings) {
		an.GridPos = nil
		an.Display = annotation.DisplayHide
	})
	if err != nil {
		return fmt.Errorf("hide: %w", err)
	}
	return nil
}
