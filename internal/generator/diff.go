package generator

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	delStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

const maxDiffLines = 10000

// Diff returns a styled line diff between old and new content, suitable for
// previewing what a regeneration would change. Identical inputs yield "".
func Diff(oldPath, newPath string, old, newer []byte) string {
	oldLines := splitLines(string(old))
	newLines := splitLines(string(newer))

	if len(oldLines) > maxDiffLines || len(newLines) > maxDiffLines {
		return "Files too large for diff\n"
	}

	edits := computeEdits(oldLines, newLines)
	if edits == nil {
		return ""
	}

	width := terminalWidth()

	var b strings.Builder
	b.WriteString(headerStyle.Render("--- "+oldPath) + "\n")
	b.WriteString(headerStyle.Render("+++ "+newPath) + "\n")
	for _, e := range edits {
		line := clipLine(e.text, width-2)
		switch e.kind {
		case editDelete:
			b.WriteString(delStyle.Render("- "+line) + "\n")
		case editInsert:
			b.WriteString(addStyle.Render("+ "+line) + "\n")
		}
	}
	return b.String()
}

type editKind int

const (
	editDelete editKind = iota
	editInsert
)

type edit struct {
	kind editKind
	text string
}

// computeEdits derives delete/insert edits from an LCS table.
// Returns nil when the inputs are identical.
func computeEdits(oldLines, newLines []string) []edit {
	n, m := len(oldLines), len(newLines)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var edits []edit
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldLines[i] == newLines[j]:
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{editDelete, oldLines[i]})
			i++
		default:
			edits = append(edits, edit{editInsert, newLines[j]})
			j++
		}
	}
	for ; i < n; i++ {
		edits = append(edits, edit{editDelete, oldLines[i]})
	}
	for ; j < m; j++ {
		edits = append(edits, edit{editInsert, newLines[j]})
	}

	return edits
}

// splitLines splits content into lines, tolerating CRLF endings and a
// missing trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// clipLine truncates to width runes, never splitting a multibyte rune.
func clipLine(s string, width int) string {
	if width <= 3 || utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 120
	}
	return w
}
