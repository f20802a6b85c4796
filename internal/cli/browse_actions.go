package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"framepick/internal/dataset"
	"framepick/internal/export"
	"framepick/internal/model"
	"framepick/internal/search"
)

type browseSearchMsg struct {
	records []model.ResultRecord
	err     error
}

type browseCollectionsMsg struct {
	listings []dataset.Listing
	err      error
}

// browseSearchCmd runs one search off the UI loop. Exactly one
// browseSearchMsg comes back per invocation.
func browseSearchCmd(src search.Source, q search.Query) tea.Cmd {
	return func() tea.Msg {
		records, err := src.Search(context.Background(), q)
		return browseSearchMsg{records: records, err: err}
	}
}

func browseCollectionsCmd(store *dataset.Store) tea.Cmd {
	return func() tea.Msg {
		listings := make([]dataset.Listing, 0, len(dataset.Collections()))
		for _, col := range dataset.Collections() {
			listing, err := store.List(col.Name)
			if err != nil {
				listing = dataset.Listing{
					Collection: col.Name,
					Entries:    []string{"error: " + err.Error()},
				}
			}
			listings = append(listings, listing)
		}
		return browseCollectionsMsg{listings: listings}
	}
}

// buildBrowseQuery assembles the search inputs currently on screen.
func (m browseModel) buildBrowseQuery() (search.Query, bool) {
	q := search.Query{
		Text:         strings.TrimSpace(m.queryInput.Value()),
		ImagePath:    m.imagePath,
		TextFilePath: m.queryFilePath,
	}
	return q, !q.Empty()
}

// runExportAction writes the current selection synchronously; export is
// local disk I/O over an already-small selection.
func (m browseModel) runExportAction() browseModel {
	res, err := export.Write(export.Job{
		Task:       m.task,
		Selection:  m.set.Selected(),
		Answer:     m.answerInput.Value(),
		OutputName: m.exportName(),
	}, m.cfg.OutputDir)
	if err != nil {
		m.statusMessage = "export rejected: " + err.Error()
		return m
	}
	m.statusMessage = fmt.Sprintf("wrote %d rows to %s", res.Rows, res.Path)
	return m
}

func (m browseModel) exportName() string {
	if m.queryFilePath == "" {
		return ""
	}
	base := filepath.Base(m.queryFilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func nextTask(t model.Task) model.Task {
	tasks := model.AllTasks()
	for i, candidate := range tasks {
		if candidate == t {
			return tasks[(i+1)%len(tasks)]
		}
	}
	return tasks[0]
}
