// Package tui renders the partially discovered maze as a character grid
// in the terminal and reads commands from the keyboard.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/ShomRinn/LabAdventures/pkg/engine/input"
	"github.com/ShomRinn/LabAdventures/pkg/engine/terminal"
	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
	"github.com/ShomRinn/LabAdventures/pkg/game/renderer"
	"github.com/ShomRinn/LabAdventures/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon     = "@"
	IconVoid       = " "
	IconStairsDown = ">"
	IconStairsUp   = "<"
	IconStairsBoth = "↕"
	IconCorner     = "┌" // Cosmetic top-left corner when north and west walls stand
)

// wallGlyphs maps a cell's standing-wall mask (North=1, East=2,
// South=4, West=8) to a box-drawing rune with a segment toward each
// closed side. Open sides stay blank.
var wallGlyphs = [16]rune{
	' ', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorCell   color.Style
	colorSubtle color.Style
	colorPlayer color.Style
	colorStairs color.Style
	colorAction color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCell = renderer.ColorCell
	t.colorSubtle = renderer.ColorSubtle
	t.colorPlayer = renderer.ColorPlayer
	t.colorStairs = renderer.ColorStairs
	t.colorAction = renderer.ColorAction
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   input.ReadCommand(),
	}
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	// Floor indicator
	t.colorAction.Printf("Floor %d/%d\n", s.Dungeon.CurrentFloor()+1, s.Dungeon.FloorCount())
	t.colorSubtle.Printf("Turn %d\n\n", s.Turns)

	t.printMaze(s)

	t.printPossibleActions()
	t.printMessagesPane(s)

	// Input prompt
	fmt.Printf("\n> ")
}

// glyphFor returns the rendered rune for one cell of the current floor.
func glyphFor(s *state.Session, cell *world.Cell) string {
	if cell == nil {
		return IconVoid
	}

	if cell.Row == s.Player.Row && cell.Col == s.Player.Col {
		return PlayerIcon
	}

	if !s.CurrentDiscovery().Discovered(cell.Row, cell.Col) {
		return IconVoid
	}

	if cell.StairsDown && cell.StairsUp {
		return IconStairsBoth
	}
	if cell.StairsDown {
		return IconStairsDown
	}
	if cell.StairsUp {
		return IconStairsUp
	}

	// Top-left corner glyph, purely cosmetic.
	if cell.Row == 0 && cell.Col == 0 && cell.HasWall(world.North) && cell.HasWall(world.West) {
		return IconCorner
	}

	return string(wallGlyphs[cell.WallMask()])
}

// renderCell returns the styled string for one cell.
func (t *TUIRenderer) renderCell(s *state.Session, cell *world.Cell) string {
	glyph := glyphFor(s, cell)

	switch glyph {
	case PlayerIcon:
		return t.colorPlayer.Sprint(glyph)
	case IconStairsDown, IconStairsUp, IconStairsBoth:
		return t.colorStairs.Sprint(glyph)
	case IconVoid:
		return glyph
	default:
		return t.colorCell.Sprint(glyph)
	}
}

// printMaze renders the current floor centered in the terminal.
func (t *TUIRenderer) printMaze(s *state.Session) {
	m := s.CurrentMaze()
	termWidth := terminal.GetWidth()

	centerIndent := (termWidth - m.Cols()) / 2
	if centerIndent < 0 {
		centerIndent = 0
	}
	indent := strings.Repeat(" ", centerIndent)

	for row := 0; row < m.Rows(); row++ {
		fmt.Print(indent)
		for col := 0; col < m.Cols(); col++ {
			fmt.Print(t.renderCell(s, m.GetCell(row, col)))
		}
		fmt.Print("\n")
	}

	fmt.Println("")
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	t.printBullet("ACTION{arrows}: move  ACTION{f}: search walls  ACTION{t}: take stairs  ACTION{q}: quit")
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Print("- " + renderer.ApplyMarkup("%s", txt) + "\n")
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(s.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range s.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
