package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"github.com/alvaroalonsobabbel/srs-tetris/tetris"
	"github.com/charmbracelet/lipgloss"
)

const (
	resetPos    = "\033[H"       // Reset cursor position to 0,0
	clearScreen = "\033[2J\033[H" // Clear the screen and reset the cursor

	renderRows = tetris.ShownRows

	emptyCell = "  "
	ghostCell = "[]"
)

//go:embed "layout.tmpl"
var layout string

type templateData struct {
	Game    *tetris.Snapshot
	NoGhost bool
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	noGhost  bool
}

func newRender(w io.Writer, l *slog.Logger, noGhost bool) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:   w,
		logger:   l,
		template: tmp,
		noGhost:  noGhost,
	}, nil
}

func (r *render) game(s *tetris.Snapshot) {
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, &templateData{Game: s, NoGhost: r.noGhost}); err != nil {
		r.logger.Error("unable to execute template in game()", slog.String("error", err.Error()))
	}
}

func (r *render) reset() {
	fmt.Fprint(r.writer, clearScreen)
}

var lobbyStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Width(38).
	Align(lipgloss.Center)

// lobby draws a message box over the middle of the stack.
func (r *render) lobby(msg ...string) {
	box := lobbyStyle.Render(strings.Join(msg, "\n"))
	for i, line := range strings.Split(box, "\n") {
		fmt.Fprintf(r.writer, "\033[%d;2H%s", 9+i, line)
	}
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"stack": stack,
		"side":  side,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	return template.New("layout").Funcs(funcMap).Parse(strings.ReplaceAll(layout, "\n", "\r\n"))
}

func cell(c tetris.Color) string {
	return fmt.Sprintf("\x1b[7m\x1b[38;2;%d;%d;%dm[]\x1b[0m", c.R, c.G, c.B)
}

// stack renders the playfield top row first, the way the template ranges over it.
func stack(td *templateData) [renderRows][tetris.Columns]string {
	rendered := [renderRows][tetris.Columns]string{}
	for y := range rendered {
		for x := range rendered[y] {
			rendered[y][x] = emptyCell
		}
	}
	if td == nil || td.Game == nil {
		return rendered
	}

	for y, row := range td.Game.Stack {
		for x, c := range row {
			if c != tetris.Background {
				rendered[renderRows-1-y][x] = cell(c)
			}
		}
	}

	paint := func(t tetris.Tetromino, out string) {
		for i, m := range t.Mask() {
			y := t.Y + i
			if y >= renderRows {
				return
			}
			for x := range tetris.Columns {
				if m&(1<<x) != 0 {
					rendered[renderRows-1-y][x] = out
				}
			}
		}
	}
	if !td.NoGhost {
		paint(td.Game.Ghost, ghostCell)
	}
	if td.Game.Running {
		paint(td.Game.Tetromino, cell(td.Game.Tetromino.Color()))
	}
	return rendered
}

// piece renders a shape in its spawn orientation, two rows of four cells.
func piece(s tetris.Shape) [2]string {
	rendered := [2]string{strings.Repeat(emptyCell, 4), strings.Repeat(emptyCell, 4)}
	if s == "" {
		return rendered
	}
	mask := tetris.MaskFor(s, tetris.Rotate0, 0)
	for i := range rendered {
		var b strings.Builder
		for x := range 4 {
			if mask[1-i]&(1<<x) != 0 {
				b.WriteString(cell(s.Color()))
			} else {
				b.WriteString(emptyCell)
			}
		}
		rendered[i] = b.String()
	}
	return rendered
}

// side renders the panel to the right of the stack, a line per stack row.
func side(td *templateData) [renderRows]string {
	var rendered [renderRows]string
	if td == nil || td.Game == nil {
		return rendered
	}
	g := td.Game
	rendered[0] = fmt.Sprintf("  Score: %d", g.Score)
	rendered[1] = fmt.Sprintf("  Lines: %d", g.Lines)
	rendered[2] = fmt.Sprintf("  Level: %d", g.Level)
	rendered[4] = "  Hold"
	held := piece(g.Held)
	rendered[5], rendered[6] = "  "+held[0], "  "+held[1]
	rendered[8] = "  Next"
	for i, s := range g.Next[:4] {
		p := piece(s)
		rendered[9+i*3], rendered[10+i*3] = "  "+p[0], "  "+p[1]
	}
	return rendered
}
