package model

import (
	"fmt"
	"strings"
)

// Task selects the competition submission format and controls the CSV
// row shape emitted on export.
type Task string

const (
	TaskKIS   Task = "KIS"
	TaskQnA   Task = "QnA"
	TaskTRAKE Task = "TRAKE"
)

func AllTasks() []Task {
	return []Task{TaskKIS, TaskQnA, TaskTRAKE}
}

func ParseTask(raw string) (Task, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "kis":
		return TaskKIS, nil
	case "qna", "qa":
		return TaskQnA, nil
	case "trake":
		return TaskTRAKE, nil
	default:
		return "", fmt.Errorf("unknown task %q (expected kis, qna, or trake)", raw)
	}
}

// DetectTask guesses the task from an uploaded query file's name, e.g.
// "query-p1-kis.txt". Returns false when no task marker is present.
func DetectTask(filename string) (Task, bool) {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "kis"):
		return TaskKIS, true
	case strings.Contains(name, "qa"), strings.Contains(name, "qna"):
		return TaskQnA, true
	case strings.Contains(name, "trake"):
		return TaskTRAKE, true
	default:
		return "", false
	}
}

// ResultRecord is one retrieved keyframe. FrameID is unique within one
// result set. Metadata carries the matched media-info document plus a
// synthesized frame_number; it is opaque to everything but the export
// writer's video-name lookup.
type ResultRecord struct {
	FrameID      string         `json:"frame_id"`
	VideoName    string         `json:"video_name"`
	KeyframePath string         `json:"keyframe_path,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// ExportVideoName resolves the video name written into submission rows:
// metadata video_name wins over the record's own, with "unknown" as the
// final fallback.
func (r ResultRecord) ExportVideoName() string {
	if v, ok := r.Metadata["video_name"].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	if strings.TrimSpace(r.VideoName) != "" {
		return r.VideoName
	}
	return "unknown"
}
