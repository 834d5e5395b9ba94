package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "classloc.dev/pkg/classloc/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	layoutStyles = map[m.LayoutKind]lipgloss.Style{
		m.LayoutUnmanaged:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		m.LayoutSingleModule: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.LayoutMultiModule:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		m.LayoutUnclassified: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// pagerReserved is the number of terminal lines kept for the pager footer.
const pagerReserved = 2

// TUI implements UI for interactive terminals. Output taller than the
// terminal opens in a scrollable pager.
type TUI struct {
	output io.Writer
	errOut io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output, errOut io.Writer) *TUI {
	return &TUI{output: output, errOut: errOut}
}

// DisplayResolution prints the resolved path or the diagnostics for a failure.
func (p *TUI) DisplayResolution(ctx context.Context, result m.ResolutionResult, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		writef(p.errOut, "%s %s: %v\n", failStyle.Render("✗"), result.Source.Path, err)

		if hint := guidance(err); hint != "" {
			writef(p.errOut, "  %s\n", faintStyle.Render(hint))
		}

		return nil
	}

	if !result.Found {
		lines := notFoundLines(result)
		writef(p.errOut, "%s\n", failStyle.Render(lines[0]))

		for _, line := range lines[1:] {
			writef(p.errOut, "%s\n", faintStyle.Render(line))
		}

		return nil
	}

	writef(p.output, "%s\n", foundStyle.Render(string(result.Path)))

	if note := caveatNote(result); note != "" {
		writef(p.errOut, "%s\n", warnStyle.Render(note))
	}

	return nil
}

// DisplayCandidates shows the candidate table, paging it when needed.
func (p *TUI) DisplayCandidates(ctx context.Context, report m.CandidateReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Source:"), report.Source.Path)
	fmt.Fprintf(&b, "%s %s\n\n", titleStyle.Render("Layout:"), styleLayout(report.Layout.Kind))
	b.WriteString(renderCandidateTable(report))

	mostLikely := mostLikelyLabel(report)
	if report.MostLikely != nil {
		mostLikely = foundStyle.Render(mostLikely)
	} else {
		mostLikely = warnStyle.Render(mostLikely)
	}

	fmt.Fprintf(&b, "\n%s %s\n", titleStyle.Render("Most likely:"), mostLikely)

	return p.page(ctx, b.String())
}

// DisplayLayout shows the classified layout.
func (p *TUI) DisplayLayout(ctx context.Context, layout m.ProjectLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := layoutLines(layout)
	lines[2] = fmt.Sprintf("Layout: %s", styleLayout(layout.Kind))

	return p.page(ctx, strings.Join(lines, "\n")+"\n")
}

// DisplayProject shows the project metadata as YAML.
func (p *TUI) DisplayProject(ctx context.Context, meta m.ProjectMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := marshalProjectYAML(meta)
	if err != nil {
		return err
	}

	return p.page(ctx, out)
}

func styleLayout(kind m.LayoutKind) string {
	style, ok := layoutStyles[kind]
	if !ok {
		return kind.String()
	}

	return style.Render(kind.String())
}

// page prints content directly when it fits the terminal and opens a pager
// otherwise.
func (p *TUI) page(ctx context.Context, content string) error {
	width, height := terminalSize(p.output)

	if !needsPager(content, height) {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	model := newPagerModel(content, width, height)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func needsPager(content string, height int) bool {
	if height <= pagerReserved {
		return false
	}

	return strings.Count(content, "\n") > height-pagerReserved
}

// pagerModel is the Bubble Tea model for scrolling long output.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, height-pagerReserved)
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = msg.Height - pagerReserved

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit", pm.viewport.ScrollPercent()*100)

	return pm.viewport.View() + "\n\n" + faintStyle.Render(footer)
}
