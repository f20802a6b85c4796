package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	browseTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	browseMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	browseErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	browsePanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	browseSelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true)
)

func (m browseModel) View() string {
	if m.fatalErr != nil {
		return browseErrorStyle.Render("fatal: " + m.fatalErr.Error())
	}
	if m.width <= 0 {
		m.width = 100
	}
	if m.height <= 0 {
		m.height = 30
	}

	var body string
	switch m.mode {
	case browseModeResults:
		body = m.viewResults()
	case browseModeAnswer:
		body = m.viewAnswer()
	case browseModeCollections:
		body = m.viewCollections()
	default:
		body = m.viewQuery()
	}

	header := browseTitleStyle.Render("framepick browse") + "\n" +
		browseMutedStyle.Render(m.keyHelp())
	status := m.renderStatusLine()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m browseModel) keyHelp() string {
	switch m.mode {
	case browseModeResults:
		return "up/down: move | space: toggle | a: all | c: clear | t: task | e/enter: export | /: query | d: database | q: quit"
	case browseModeAnswer:
		return "enter: export | esc: cancel"
	case browseModeCollections:
		return "up/down: move | r: refresh | esc/d: back | ctrl+c: quit"
	default:
		return "enter: search | ctrl+p: strip punctuation | ctrl+r: clear inputs | tab: results | ctrl+d: database | ctrl+c: quit"
	}
}

func (m browseModel) viewQuery() string {
	width := clampInt(m.width-2, 40, 120)
	lines := []string{
		"Text Query",
		m.queryInput.View(),
		"",
		"Image:      " + orNone(m.imagePath),
		"Query File: " + orNone(m.queryFilePath),
		"Task:       " + string(m.task),
		"Source:     " + m.sourceLabel(),
	}
	return browsePanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m browseModel) viewResults() string {
	width := clampInt(m.width-2, 40, 140)
	records := m.set.Records()
	if len(records) == 0 {
		return browsePanelStyle.Width(width).Render(browseMutedStyle.Render("No frames to display. Press / to edit the query."))
	}

	maxRows := clampInt(m.height-8, 4, 24)
	start, end := listWindow(len(records), m.cursor, maxRows)

	lines := make([]string, 0, maxRows+2)
	lines = append(lines, fmt.Sprintf("Retrieved Frames (%d, %d selected)  Task: %s", len(records), m.set.SelectedCount(), m.task))
	lines = append(lines, "")
	for i := start; i < end; i++ {
		rec := records[i]
		mark := "[ ]"
		if m.set.IsSelected(rec.FrameID) {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s %-16s %-14s %s", mark, rec.FrameID, rec.VideoName, frameNumber(rec))
		row = truncateRunes(row, maxInt(width-4, 10))
		if i == m.cursor {
			row = browseSelStyle.Width(maxInt(width-4, 6)).Render(row)
		}
		lines = append(lines, row)
	}
	return browsePanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m browseModel) viewAnswer() string {
	width := clampInt(m.width-2, 40, 120)
	lines := []string{
		"Answer (QnA task)",
		m.answerInput.View(),
		"",
		browseMutedStyle.Render(fmt.Sprintf("%d frames selected", m.set.SelectedCount())),
	}
	return browsePanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m browseModel) viewCollections() string {
	width := clampInt(m.width-2, 40, 140)
	if len(m.listings) == 0 {
		return browsePanelStyle.Width(width).Render(browseMutedStyle.Render("Loading collections..."))
	}

	leftW := clampInt(width/3, 24, 40)
	rightW := maxInt(width-leftW-1, 20)

	left := make([]string, 0, len(m.listings)+2)
	left = append(left, "Database Folders", "")
	for i, listing := range m.listings {
		label := fmt.Sprintf("%-18s %d", listing.Collection, len(listing.Entries))
		if listing.Missing {
			label = fmt.Sprintf("%-18s not found", listing.Collection)
		}
		label = truncateRunes(label, maxInt(leftW-4, 10))
		if i == m.cursor {
			label = browseSelStyle.Width(maxInt(leftW-4, 6)).Render(label)
		}
		left = append(left, label)
	}

	right := make([]string, 0, 16)
	sel := m.listings[clampInt(m.cursor, 0, len(m.listings)-1)]
	right = append(right, sel.Collection, "")
	switch {
	case sel.Missing:
		right = append(right, browseMutedStyle.Render(fmt.Sprintf("Folder %q not found", sel.Collection)))
	case len(sel.Entries) == 0:
		right = append(right, browseMutedStyle.Render("No items found"))
	default:
		maxRows := clampInt(m.height-10, 4, 20)
		for i, entry := range sel.Entries {
			if i == maxRows {
				right = append(right, browseMutedStyle.Render(fmt.Sprintf("... and %d more", len(sel.Entries)-maxRows)))
				break
			}
			right = append(right, truncateRunes(entry, maxInt(rightW-4, 10)))
		}
	}

	leftPanel := browsePanelStyle.Width(leftW).Render(strings.Join(left, "\n"))
	rightPanel := browsePanelStyle.Width(rightW).Render(strings.Join(right, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
}

func (m browseModel) renderStatusLine() string {
	status := m.statusMessage
	if strings.HasPrefix(status, "search failed") || strings.HasPrefix(status, "export rejected") {
		return browseErrorStyle.Render(status)
	}
	return browseMutedStyle.Render(status)
}

func (m browseModel) sourceLabel() string {
	if m.cfg.UseMockData {
		return "mock data"
	}
	return "local dataset (" + m.cfg.DatabasePath + ")"
}

func orNone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(none)"
	}
	return v
}
