package cli

import (
	"testing"

	"framepick/internal/model"
)

func TestBuildQueryNormalizesText(t *testing.T) {
	q, err := buildQuery("  a, b!  c  ", "", "")
	if err != nil {
		t.Fatalf("buildQuery: %v", err)
	}
	if q.Text != "a b c" {
		t.Fatalf("got %q", q.Text)
	}
}

func TestBuildQueryRejectsEmptyInput(t *testing.T) {
	if _, err := buildQuery("", "", ""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestBuildQueryRejectsAllPunctuation(t *testing.T) {
	if _, err := buildQuery("?!...", "", ""); err == nil {
		t.Fatal("expected error when normalization strips everything")
	}
}

func TestBuildQueryImageOnly(t *testing.T) {
	q, err := buildQuery("", "frame.jpg", "")
	if err != nil {
		t.Fatalf("buildQuery: %v", err)
	}
	if q.ImagePath != "frame.jpg" || q.Text != "" {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestResolveTask(t *testing.T) {
	cases := []struct {
		flag, file string
		want       model.Task
	}{
		{"qna", "", model.TaskQnA},
		{"qa", "", model.TaskQnA},
		{"TRAKE", "", model.TaskTRAKE},
		{"", "query-trake-01.txt", model.TaskTRAKE},
		{"", "pack1-qa-3.txt", model.TaskQnA},
		{"", "plain.txt", model.TaskKIS},
		{"", "", model.TaskKIS},
		{"kis", "query-trake-01.txt", model.TaskKIS},
	}
	for _, tc := range cases {
		got, err := resolveTask(tc.flag, tc.file)
		if err != nil {
			t.Fatalf("resolveTask(%q, %q): %v", tc.flag, tc.file, err)
		}
		if got != tc.want {
			t.Fatalf("resolveTask(%q, %q) = %q, want %q", tc.flag, tc.file, got, tc.want)
		}
	}
}

func TestResolveTaskRejectsUnknownFlag(t *testing.T) {
	if _, err := resolveTask("vqa", ""); err == nil {
		t.Fatal("expected error for unknown task")
	}
}
