package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListFiltersByKind(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "videos", "b.mp4"))
	writeFile(t, filepath.Join(root, "videos", "a.MP4"))
	writeFile(t, filepath.Join(root, "videos", "notes.txt"))
	if err := os.MkdirAll(filepath.Join(root, "videos", "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(root, "keyframes", "v1", "001.jpg"))
	writeFile(t, filepath.Join(root, "keyframes", "stray.jpg"))

	store := NewStore(root)

	videos, err := store.List(CollectionVideos)
	if err != nil {
		t.Fatal(err)
	}
	if videos.Missing {
		t.Fatal("videos collection should not be missing")
	}
	if len(videos.Entries) != 2 || videos.Entries[0] != "a.MP4" || videos.Entries[1] != "b.mp4" {
		t.Fatalf("unexpected video entries: %v", videos.Entries)
	}

	frames, err := store.List(CollectionKeyframes)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames.Entries) != 1 || frames.Entries[0] != "v1" {
		t.Fatalf("keyframes listing should only contain directories, got %v", frames.Entries)
	}
}

func TestListMissingCollection(t *testing.T) {
	store := NewStore(t.TempDir())
	listing, err := store.List(CollectionObjects)
	if err != nil {
		t.Fatal(err)
	}
	if !listing.Missing {
		t.Fatal("expected missing collection")
	}
	if len(listing.Entries) != 0 {
		t.Fatalf("missing collection should have no entries, got %v", listing.Entries)
	}
}

func TestListUnknownCollection(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.List("thumbnails"); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestMediaInfoFilesMissingIsNotFound(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.MediaInfoFiles()
	if err == nil {
		t.Fatal("expected error for missing media-info")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestKeyframesCapAndAbsence(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 12; i++ {
		writeFile(t, filepath.Join(root, "keyframes", "v1", frameName(i)))
	}
	writeFile(t, filepath.Join(root, "keyframes", "v1", "readme.txt"))

	store := NewStore(root)
	frames, err := store.Keyframes("v1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 10 {
		t.Fatalf("expected 10 capped frames, got %d", len(frames))
	}
	if frames[0] != "frame00.jpg" || frames[9] != "frame09.jpg" {
		t.Fatalf("frames out of listing order: %v", frames)
	}

	none, err := store.Keyframes("v2", 10)
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Fatalf("absent keyframe dir should yield nil, got %v", none)
	}
}

func TestReadMediaInfo(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "media-info", "v1.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"title":"cat video"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(root)
	doc, err := store.ReadMediaInfo("v1.json")
	if err != nil {
		t.Fatal(err)
	}
	if doc["title"] != "cat video" {
		t.Fatalf("unexpected document: %v", doc)
	}

	if err := os.WriteFile(filepath.Join(root, "media-info", "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.ReadMediaInfo("bad.json"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestVideoID(t *testing.T) {
	if got := VideoID("L01_V003.json"); got != "L01_V003" {
		t.Fatalf("VideoID = %q", got)
	}
}

func frameName(i int) string {
	return "frame" + string(rune('0'+i/10)) + string(rune('0'+i%10)) + ".jpg"
}
