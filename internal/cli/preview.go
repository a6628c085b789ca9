package cli

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-safearea/internal/config"
	"github.com/grindlemire/go-safearea/internal/host"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/layoutroot"
	"github.com/grindlemire/go-safearea/internal/resolution"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

// A terminal cell is treated as one display pixel wide and two tall.
const cellAspect = 2

// chrome is the number of terminal rows used by the status and help lines.
const chrome = 2

const (
	glyphOutside = ' '
	glyphUnsafe  = '░'
	glyphSafe    = '·'
)

var (
	previewUnsafeStyle = lipgloss.NewStyle().Foreground(colorYellow)
	previewNodeStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewSafeStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// demoElements are placed when no manifest is given.
var demoElements = []config.Element{
	{ID: "close", Anchor: layout.TopRight, Width: 120, Height: 120, OffsetX: -150, OffsetY: 30},
	{ID: "score", Anchor: layout.TopCenter, Width: 400, Height: 100, OffsetX: -200, OffsetY: 30},
	{ID: "joystick", Anchor: layout.BottomLeft, Width: 240, Height: 240, OffsetX: 40, OffsetY: -280},
	{ID: "menu", Anchor: layout.BottomRight, Width: 160, Height: 160, OffsetX: -200, OffsetY: -200},
}

var previewModes = []resolution.Mode{
	resolution.Auto, resolution.ShowAll, resolution.NoBorder, resolution.FixedWidth, resolution.FixedHeight,
}

type previewNode struct {
	id  string
	box *layout.Box
}

// previewModel is the bubbletea model for the live preview. Terminal
// resizes drive the simulated display, so every WindowSizeMsg runs a full
// compute and repositions the tracked nodes.
type previewModel struct {
	sim     *host.Sim
	manager *safearea.Manager
	root    *layoutroot.Root
	nodes   []previewNode

	cols, rows int
	mode       int
}

func newPreviewModel(sim *host.Sim, m *safearea.Manager, root *layoutroot.Root, elements []config.Element) previewModel {
	model := previewModel{sim: sim, manager: m, root: root}
	for i, mode := range previewModes {
		if mode == m.Config().Policy.Mode {
			model.mode = i
		}
	}
	for _, e := range elements {
		box := layout.NewBox(e.Width, e.Height)
		root.AddWithAnchor(e.ID, box, e.Anchor, e.OffsetX, e.OffsetY)
		model.nodes = append(model.nodes, previewNode{id: e.ID, box: box})
	}
	return model
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.sim.Rotate(true)
			m.resizeDisplay()
		case "m":
			m.mode = (m.mode + 1) % len(previewModes)
			cfg := m.manager.Config()
			cfg.Policy.Mode = previewModes[m.mode]
			m.manager.Reconfigure(cfg)
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-chrome, 1)
		m.resizeDisplay()
	}
	return m, nil
}

func (m previewModel) resizeDisplay() {
	if m.cols <= 0 {
		return
	}
	m.sim.Resize(float64(m.cols), float64(m.rows*cellAspect))
}

func (m previewModel) View() string {
	if m.cols <= 0 {
		return "waiting for terminal size..."
	}

	snap := m.manager.Snapshot()
	var b strings.Builder
	for _, line := range renderFrame(snap, m.nodes, m.cols, m.rows) {
		b.WriteString(styleFrameLine(line))
		b.WriteByte('\n')
	}

	r := snap.Resolution
	b.WriteString(StyleTitle.Render(r.Policy.String()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  scale %.3f  safe %s  nodes %d", r.Scale, plainRect(snap.FinalSafe), m.root.Len())))
	b.WriteByte('\n')
	b.WriteString(StyleDim.Render("r rotate  m cycle policy  q quit"))
	return b.String()
}

// renderFrame rasterises a snapshot onto a cols x rows grid. Each cell is
// sampled at its centre, mapped back to design space, and drawn as a node
// initial, the safe area, the unsafe margin, or nothing when it falls
// outside the visible canvas.
func renderFrame(s safearea.Snapshot, nodes []previewNode, cols, rows int) []string {
	lines := make([]string, rows)
	row := make([]rune, cols)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			p := s.Resolution.ToDesign(layout.Point{
				X: float64(cx) + 0.5,
				Y: (float64(cy) + 0.5) * cellAspect,
			})
			row[cx] = glyphAt(s, nodes, p)
		}
		lines[cy] = string(row)
	}
	return lines
}

func glyphAt(s safearea.Snapshot, nodes []previewNode, p layout.Point) rune {
	for _, n := range nodes {
		if layout.Bounds(n.box).Contains(p) {
			return nodeGlyph(n.id)
		}
	}
	switch {
	case !s.View.Contains(p):
		return glyphOutside
	case !s.FinalSafe.Contains(p):
		return glyphUnsafe
	default:
		return glyphSafe
	}
}

func nodeGlyph(id string) rune {
	for _, r := range id {
		return unicode.ToUpper(r)
	}
	return '#'
}

func styleFrameLine(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch r {
		case glyphOutside:
			b.WriteRune(r)
		case glyphUnsafe:
			b.WriteString(previewUnsafeStyle.Render(string(r)))
		case glyphSafe:
			b.WriteString(previewSafeStyle.Render(string(r)))
		default:
			b.WriteString(previewNodeStyle.Render(string(r)))
		}
	}
	return b.String()
}

func plainRect(r layout.Rect) string {
	return fmt.Sprintf("(%.0f,%.0f %.0fx%.0f)", r.X, r.Y, r.Width, r.Height)
}

type previewOptions struct {
	surface  surfaceFlags
	elements string
}

func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Watch the safe area follow the terminal size",
		Long: `Preview treats the terminal as the display: resizing the window recomputes
the safe area and re-anchors every element live. Shaded cells are outside the
final safe rectangle; letters are anchored elements.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, opts)
		},
	}

	opts.surface.register(cmd)
	cmd.Flags().StringVarP(&opts.elements, "elements", "e", "", "element manifest (.yaml); a demo set is used when empty")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, opts previewOptions) error {
	logger := loggerFromContext(cmd.Context())

	elements := demoElements
	if opts.elements != "" {
		manifest, err := config.LoadManifest(opts.elements)
		if err != nil {
			return err
		}
		elements = manifest.Elements
	}

	sim, m, err := opts.surface.build(logger)
	if err != nil {
		return err
	}
	defer m.Destroy()

	root, err := layoutroot.New(m, layoutroot.WithLogger(logger))
	if err != nil {
		return err
	}
	defer root.Destroy()

	model := newPreviewModel(sim, m, root, elements)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}
