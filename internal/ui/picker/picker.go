// Package picker provides an interactive fuzzy selector over the recent
// files list.
package picker

import (
	"io"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/recent/internal/ui/static"
	"github.com/raphi011/recent/internal/ui/styles"
)

// maxVisible is the number of rows shown at once.
const maxVisible = 10

// Match is one ranked entry.
type Match struct {
	Path           string
	Index          int   // position in the recent list
	MatchedIndexes []int // byte offsets into Path that matched the query
}

// Rank orders files by fuzzy match against query. An empty query keeps
// recency order. Entries with equal scores keep recency order.
func Rank(files []string, query string) []Match {
	if query == "" {
		matches := make([]Match, len(files))
		for i, f := range files {
			matches[i] = Match{Path: f, Index: i}
		}
		return matches
	}

	found := fuzzy.Find(query, files)
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{Path: m.Str, Index: m.Index, MatchedIndexes: m.MatchedIndexes}
	}
	return matches
}

// Result is the outcome of Run.
type Result struct {
	Path      string
	Cancelled bool
}

type model struct {
	files    []string
	input    textinput.Model
	matches  []Match
	cursor   int
	selected string
	done     bool
	quit     bool
}

func newModel(files []string) *model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "filter recent files"
	ti.SetWidth(40)
	ti.Focus()

	return &model{
		files:   files,
		input:   ti,
		matches: Rank(files, ""),
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; other messages go to the text input.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case "esc":
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.refilter()
			return m, nil
		}
		m.quit = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.matches) == 0 {
			return m, nil
		}
		m.selected = m.matches[m.cursor].Path
		m.done = true
		return m, tea.Quit
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *model) refilter() {
	m.matches = Rank(m.files, m.input.Value())
	m.cursor = 0
}

func (m *model) View() tea.View {
	if m.done || m.quit {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *model) render() string {
	var b strings.Builder
	b.WriteString(styles.PromptStyle().Render("Recent files") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle().Render("  no matches") + "\n")
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	for i := start; i < end; i++ {
		match := m.matches[i]
		cursor := "  "
		style := styles.NormalStyle()
		if i == m.cursor {
			cursor = "> "
			style = styles.SelectedStyle()
		}
		b.WriteString(cursor + highlight(match, style) + " " +
			styles.MutedStyle().Render(static.DisplayName(match.Path)) + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle().Render("type to filter • ↑/↓ move • enter select • esc cancel") + "\n")
	return b.String()
}

// highlight renders path with matched characters emphasized.
func highlight(match Match, base lipgloss.Style) string {
	if len(match.MatchedIndexes) == 0 {
		return base.Render(match.Path)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	hl := styles.HighlightStyle()
	var b strings.Builder
	for i, r := range match.Path {
		if matched[i] {
			b.WriteString(hl.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Run shows the picker on out (normally os.Stderr, so stdout stays free for
// the selected path) and blocks until the user selects or cancels.
func Run(files []string, out io.Writer) (Result, error) {
	if len(files) == 0 {
		return Result{Cancelled: true}, nil
	}

	profile := colorprofile.Detect(out, os.Environ())
	p := tea.NewProgram(newModel(files),
		tea.WithOutput(out),
		tea.WithColorProfile(profile),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m := final.(*model)
	if m.quit || !m.done {
		return Result{Cancelled: true}, nil
	}
	return Result{Path: m.selected}, nil
}
