package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"framepick/internal/dataset"
)

func buildDataset(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	mediaInfo := filepath.Join(root, "media-info")
	if err := os.MkdirAll(mediaInfo, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mediaInfo, "v1.json"), []byte(`{"title":"cat video"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	frames := filepath.Join(root, "keyframes", "v1")
	if err := os.MkdirAll(frames, 0o755); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("%03d.jpg", i+1)
		if err := os.WriteFile(filepath.Join(frames, name), []byte("jpg"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLocalSearchMatchCapsAtTen(t *testing.T) {
	src := NewLocalSource(dataset.NewStore(buildDataset(t)), nil)

	recs, err := src.Search(context.Background(), Query{Text: "cat"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 10 {
		t.Fatalf("expected 10 capped records, got %d", len(recs))
	}
	for i, r := range recs {
		if r.VideoName != "v1" {
			t.Fatalf("record %d video = %q, want v1", i, r.VideoName)
		}
		if r.Metadata["frame_number"] != i {
			t.Fatalf("record %d frame_number = %v, want %d", i, r.Metadata["frame_number"], i)
		}
		if r.Metadata["title"] != "cat video" {
			t.Fatalf("record %d missing matched document fields: %v", i, r.Metadata)
		}
	}
	if recs[0].FrameID != "001" || recs[9].FrameID != "010" {
		t.Fatalf("frame ids out of listing order: %s .. %s", recs[0].FrameID, recs[9].FrameID)
	}
}

func TestLocalSearchMatchIsCaseInsensitive(t *testing.T) {
	src := NewLocalSource(dataset.NewStore(buildDataset(t)), nil)
	recs, err := src.Search(context.Background(), Query{Text: "CAT Video"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 10 {
		t.Fatalf("expected case-insensitive match, got %d records", len(recs))
	}
}

func TestLocalSearchNoMatch(t *testing.T) {
	src := NewLocalSource(dataset.NewStore(buildDataset(t)), nil)
	recs, err := src.Search(context.Background(), Query{Text: "dog"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %d records", len(recs))
	}
}

func TestLocalSearchMissingMediaInfoIsFatal(t *testing.T) {
	src := NewLocalSource(dataset.NewStore(t.TempDir()), nil)
	_, err := src.Search(context.Background(), Query{Text: "cat"})
	if err == nil {
		t.Fatal("expected error for missing media-info collection")
	}
	if !dataset.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestLocalSearchSkipsUnparsableDocuments(t *testing.T) {
	root := buildDataset(t)
	if err := os.WriteFile(filepath.Join(root, "media-info", "broken.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewLocalSource(dataset.NewStore(root), nil)
	recs, err := src.Search(context.Background(), Query{Text: "cat"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 10 {
		t.Fatalf("broken document must be skipped, not fatal; got %d records", len(recs))
	}
}

func TestLocalSearchMatchedVideoWithoutKeyframes(t *testing.T) {
	root := buildDataset(t)
	if err := os.WriteFile(filepath.Join(root, "media-info", "v2.json"), []byte(`{"title":"another cat"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewLocalSource(dataset.NewStore(root), nil)
	recs, err := src.Search(context.Background(), Query{Text: "cat"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		if r.VideoName == "v2" {
			t.Fatal("video without keyframes must contribute zero records")
		}
	}
	if len(recs) != 10 {
		t.Fatalf("expected v1's 10 records only, got %d", len(recs))
	}
}

func TestLocalSearchImageOnlyUsesSubstitute(t *testing.T) {
	root := buildDataset(t)
	if err := os.WriteFile(filepath.Join(root, "media-info", "v3.json"), []byte(`{"note":"image_search placeholder"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewLocalSource(dataset.NewStore(root), nil)
	recs, err := src.Search(context.Background(), Query{ImagePath: "/tmp/upload.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	// v3 matches the substitute string but has no keyframes directory.
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestLocalSearchQueryFileContents(t *testing.T) {
	root := buildDataset(t)
	queryFile := filepath.Join(t.TempDir(), "query-kis-01.txt")
	if err := os.WriteFile(queryFile, []byte("cat video\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewLocalSource(dataset.NewStore(root), nil)
	recs, err := src.Search(context.Background(), Query{TextFilePath: queryFile})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 10 {
		t.Fatalf("expected query file contents to drive the text path, got %d records", len(recs))
	}
}

func TestLocalSearchRejectsEmptyQuery(t *testing.T) {
	src := NewLocalSource(dataset.NewStore(buildDataset(t)), nil)
	if _, err := src.Search(context.Background(), Query{}); err == nil {
		t.Fatal("expected error for empty query")
	}
}
