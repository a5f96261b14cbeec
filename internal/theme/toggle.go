package theme

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

// ToggleView - what the theme toggle control shows for a theme.
type ToggleView struct {
	Label       string
	Pressed     bool
	Description string
}

func NewToggleView(theme entity.Theme) ToggleView {
	label := "Theme: " + theme.Title()

	return ToggleView{
		Label:       label,
		Pressed:     theme.IsDark(),
		Description: fmt.Sprintf("%s. Activate to switch to %s mode.", label, theme.Opposite().Title()),
	}
}
