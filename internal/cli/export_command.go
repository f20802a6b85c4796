package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"framepick/internal/config"
	"framepick/internal/export"
	"framepick/internal/model"
	"framepick/internal/results"
)

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	text := fs.String("query", "", "free-text query")
	image := fs.String("image", "", "query image path (degrades to the text path)")
	file := fs.String("file", "", "query text file path; also names the CSV and may select the task")
	taskFlag := fs.String("task", "", "task: kis|qna|trake (empty: detect from --file, else kis)")
	answer := fs.String("answer", "", "answer string (required for qna)")
	database := fs.String("database", "", "dataset root override")
	outputDir := fs.String("output-dir", "", "output root override")
	mock := fs.String("mock", "", "use mock data: true|false (empty keeps config)")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(*configPath, *database, *outputDir, *mock)
	if err != nil {
		return err
	}
	q, err := buildQuery(*text, *image, *file)
	if err != nil {
		return err
	}

	task, err := resolveTask(*taskFlag, q.TextFilePath)
	if err != nil {
		return err
	}

	src := newSource(cfg, newLogger())
	records, err := src.Search(context.Background(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(records) == 0 {
		return errors.New("search matched no frames; nothing to export")
	}

	set := results.NewSet()
	set.Replace(records)
	set.SelectAll()

	outputName := ""
	if q.TextFilePath != "" {
		base := filepath.Base(q.TextFilePath)
		outputName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	res, err := export.Write(export.Job{
		Task:       task,
		Selection:  set.Selected(),
		Answer:     *answer,
		OutputName: outputName,
	}, cfg.OutputDir)
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(res)
	}
	fmt.Printf("wrote %d rows to %s\n", res.Rows, res.Path)
	return nil
}

// resolveTask prefers the explicit flag, then a task marker in the
// query file's name, then KIS.
func resolveTask(flagValue, queryFile string) (model.Task, error) {
	if strings.TrimSpace(flagValue) != "" {
		return model.ParseTask(flagValue)
	}
	if queryFile != "" {
		if task, ok := model.DetectTask(filepath.Base(queryFile)); ok {
			return task, nil
		}
	}
	return model.TaskKIS, nil
}
