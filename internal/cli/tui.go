package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// diagramExtensions are the file suffixes the picker offers.
var diagramExtensions = []string{".asc", ".diag", ".txt"}

// filePickerModel is the bubbletea model for interactive diagram
// selection when render is invoked from a terminal with no arguments.
type filePickerModel struct {
	files  []string
	cursor int
	choice string
	height int
	offset int
}

func newFilePickerModel(files []string) filePickerModel {
	return filePickerModel{files: files, height: 15}
}

func (m filePickerModel) Init() tea.Cmd {
	return nil
}

func (m filePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.choice = m.files[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m filePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.files) {
		end = len(m.files)
	}

	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + m.files[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + m.files[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.files))))

	return b.String()
}

// findDiagramFiles lists candidate diagram files in dir, sorted by
// name.
func findDiagramFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range diagramExtensions {
			if ext == want {
				files = append(files, e.Name())
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// pickDiagramFile runs the interactive picker over the current
// directory. It returns an empty path when the user quits without
// choosing a file.
func pickDiagramFile() (string, error) {
	files, err := findDiagramFiles(".")
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no diagram files (%s) in the current directory; pass a file or pipe a diagram on stdin",
			strings.Join(diagramExtensions, ", "))
	}

	final, err := tea.NewProgram(newFilePickerModel(files)).Run()
	if err != nil {
		return "", err
	}
	m, _ := final.(filePickerModel)
	return m.choice, nil
}
