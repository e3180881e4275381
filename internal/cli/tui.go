package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/tessera/pkg/codec"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// previewColumns is the width of the tiling preview beside the list.
const previewColumns = 40

// =============================================================================
// TilingListModel - Interactive tiling selection
// =============================================================================

// TilingListModel is the bubbletea model for browsing the tilings found by
// pack. The highlighted tiling is previewed next to the list.
type TilingListModel struct {
	Tilings  []tiling
	Paths    []string
	Cursor   int
	Offset   int
	Height   int
	Selected *tiling

	previews map[int]string
}

// NewTilingListModel creates a browser over tilings of the images at paths.
func NewTilingListModel(tilings []tiling, paths []string) TilingListModel {
	return TilingListModel{
		Tilings:  tilings,
		Paths:    paths,
		Height:   10,
		previews: make(map[int]string),
	}
}

func (m TilingListModel) Init() tea.Cmd {
	return nil
}

func (m TilingListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Tilings)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			t := m.Tilings[m.Cursor]
			m.Selected = &t
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 3)
	}
	return m, nil
}

func (m TilingListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Tiling"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Tilings))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		t := m.Tilings[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, strconv.Itoa(i + 1), t.Canvas.Size().String(), m.order(t)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Size", "Order").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), "  ", m.preview()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Tilings))))

	return b.String()
}

// order names the sources of t in placement order.
func (m TilingListModel) order(t tiling) string {
	names := make([]string, len(t.Order))
	for k, i := range t.Order {
		names[k] = filepath.Base(m.Paths[i])
	}
	return strings.Join(names, " ")
}

// preview renders the highlighted tiling, caching the result per index.
func (m TilingListModel) preview() string {
	if len(m.Tilings) == 0 {
		return ""
	}
	if p, ok := m.previews[m.Cursor]; ok {
		return p
	}
	p := renderHalfBlocks(codec.Scale(m.Tilings[m.Cursor].Canvas, previewColumns))
	if m.previews != nil {
		m.previews[m.Cursor] = p
	}
	return p
}

// pickTiling runs the browser and returns the chosen tiling. ok is false
// when the user quit without choosing.
func pickTiling(tilings []tiling, paths []string) (choice tiling, ok bool, err error) {
	final, err := tea.NewProgram(NewTilingListModel(tilings, paths), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return tiling{}, false, fmt.Errorf("run tiling browser: %w", err)
	}
	m, _ := final.(TilingListModel)
	if m.Selected == nil {
		return tiling{}, false, nil
	}
	return *m.Selected, true, nil
}
