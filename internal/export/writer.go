// Package export renders a selection of result records into the
// competition's submission CSV layouts.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"framepick/internal/fsio"
	"framepick/internal/model"
)

var (
	ErrEmptySelection = errors.New("no frames selected")
	ErrAnswerRequired = errors.New("answer is required for the QnA task")
)

// Job is one export request: consumed immediately, never retained.
// OutputName overrides the CSV base name when the query came from an
// uploaded file; empty means timestamp-task naming.
type Job struct {
	Task       model.Task
	Selection  []model.ResultRecord
	Answer     string
	OutputName string
}

type Result struct {
	Path string `json:"path"`
	Dir  string `json:"dir"`
	Rows int    `json:"rows"`
}

// Write validates the job, then writes one headerless CSV into a fresh
// timestamped subdirectory of <outputRoot>/output_csv. Validation
// failures happen before any directory or file is created.
func Write(job Job, outputRoot string) (Result, error) {
	rows, err := buildRows(job)
	if err != nil {
		return Result{}, err
	}

	stamp := time.Now().Format("20060102_150405")
	task := strings.ToLower(string(job.Task))
	dir := filepath.Join(outputRoot, "output_csv", stamp+"-"+task)

	name := strings.TrimSpace(job.OutputName)
	if name == "" {
		name = stamp + "-" + task
	}
	path := filepath.Join(dir, name+".csv")

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return Result{}, fmt.Errorf("encode submission rows: %w", err)
	}
	if err := fsio.WriteBytes(path, buf.Bytes()); err != nil {
		return Result{}, err
	}

	return Result{Path: path, Dir: dir, Rows: len(rows)}, nil
}

func buildRows(job Job) ([][]string, error) {
	if len(job.Selection) == 0 {
		return nil, ErrEmptySelection
	}

	switch job.Task {
	case model.TaskKIS:
		rows := make([][]string, 0, len(job.Selection))
		for _, rec := range job.Selection {
			rows = append(rows, []string{rec.ExportVideoName(), rec.FrameID})
		}
		return rows, nil

	case model.TaskQnA:
		answer := strings.TrimSpace(job.Answer)
		if answer == "" {
			return nil, ErrAnswerRequired
		}
		rows := make([][]string, 0, len(job.Selection))
		for _, rec := range job.Selection {
			rows = append(rows, []string{rec.ExportVideoName(), rec.FrameID, answer})
		}
		return rows, nil

	case model.TaskTRAKE:
		return buildTrakeRows(job.Selection), nil

	default:
		return nil, fmt.Errorf("unknown task %q", job.Task)
	}
}

// buildTrakeRows groups frames by video, one row per video in
// first-seen order, right-padded so every row spans the widest group.
// Frame order within a group follows the selection order.
func buildTrakeRows(selection []model.ResultRecord) [][]string {
	groups := make(map[string][]string)
	var order []string
	for _, rec := range selection {
		name := rec.ExportVideoName()
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], rec.FrameID)
	}

	maxFrames := 0
	for _, frames := range groups {
		if len(frames) > maxFrames {
			maxFrames = len(frames)
		}
	}

	rows := make([][]string, 0, len(order))
	for _, name := range order {
		frames := groups[name]
		row := make([]string, 0, maxFrames+1)
		row = append(row, name)
		row = append(row, frames...)
		for len(row) < maxFrames+1 {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return rows
}
