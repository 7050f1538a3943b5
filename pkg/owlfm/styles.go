package owlfm

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	TableHeaderColor tcell.Color
	DirColor         tcell.Color
	FileColor        tcell.Color
	StatusColor      tcell.Color
	PathColor        tcell.Color
}

var Style = Styles{
	TableHeaderColor: tcell.ColorWhiteSmoke,
	DirColor:         tcell.ColorCornflowerBlue,
	FileColor:        tcell.ColorWhite,
	StatusColor:      tcell.ColorSlateGray,
	PathColor:        tcell.ColorYellowGreen,
}
