// Package dataset exposes the on-disk retrieval dataset: six fixed
// read-only collections rooted at a configurable path.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	CollectionKeyframes    = "keyframes"
	CollectionVideos       = "videos"
	CollectionClipFeatures = "clip-features-32"
	CollectionMapKeyframes = "map-keyframes"
	CollectionMediaInfo    = "media-info"
	CollectionObjects      = "objects"
)

// ErrCollectionNotFound reports a collection directory that does not
// exist under the dataset root.
var ErrCollectionNotFound = errors.New("collection not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCollectionNotFound)
}

// Collection describes one of the six dataset subdirectories. Dir
// collections hold one subdirectory per video; file collections hold
// flat files with a fixed extension.
type Collection struct {
	Name  string
	Label string
	Ext   string
	Dirs  bool
}

var collections = []Collection{
	{Name: CollectionKeyframes, Label: "Keyframes (folders with .jpg files)", Dirs: true},
	{Name: CollectionVideos, Label: "Videos (.mp4 files)", Ext: ".mp4"},
	{Name: CollectionClipFeatures, Label: "Clip Features (.npy files)", Ext: ".npy"},
	{Name: CollectionMapKeyframes, Label: "Map Keyframes (.csv files)", Ext: ".csv"},
	{Name: CollectionMediaInfo, Label: "Media Info (.json files)", Ext: ".json"},
	{Name: CollectionObjects, Label: "Objects (folders with .json files)", Dirs: true},
}

func Collections() []Collection {
	out := make([]Collection, len(collections))
	copy(out, collections)
	return out
}

func CollectionByName(name string) (Collection, bool) {
	for _, c := range collections {
		if c.Name == strings.TrimSpace(name) {
			return c, true
		}
	}
	return Collection{}, false
}

// Store reads the dataset directory layout. It performs no writes and
// holds no open handles; every method hits the filesystem directly.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: strings.TrimSpace(root)}
}

// Listing is the result of enumerating one collection. Missing marks an
// absent collection directory; that is an expected state for partially
// downloaded datasets, not an error.
type Listing struct {
	Collection string   `json:"collection"`
	Entries    []string `json:"entries"`
	Missing    bool     `json:"missing,omitempty"`
}

// List enumerates a collection, filtered to its expected entry kind and
// sorted by name.
func (s *Store) List(name string) (Listing, error) {
	col, ok := CollectionByName(name)
	if !ok {
		return Listing{}, fmt.Errorf("unknown collection %q", name)
	}

	dir := filepath.Join(s.Root, col.Name)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Listing{Collection: col.Name, Missing: true}, nil
	}
	if err != nil {
		return Listing{}, fmt.Errorf("list collection %s: %w", col.Name, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if col.Dirs {
			if e.IsDir() {
				names = append(names, e.Name())
			}
			continue
		}
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), col.Ext) {
			names = append(names, e.Name())
		}
	}
	return Listing{Collection: col.Name, Entries: names}, nil
}

// EntryPath resolves one entry inside a collection.
func (s *Store) EntryPath(collection, entry string) string {
	return filepath.Join(s.Root, collection, entry)
}

// MediaInfoFiles lists the metadata documents, one per video. A missing
// media-info directory is fatal for search and reported as
// ErrCollectionNotFound.
func (s *Store) MediaInfoFiles() ([]string, error) {
	listing, err := s.List(CollectionMediaInfo)
	if err != nil {
		return nil, err
	}
	if listing.Missing {
		return nil, fmt.Errorf("%s under %s: %w", CollectionMediaInfo, s.Root, ErrCollectionNotFound)
	}
	return listing.Entries, nil
}

// ReadMediaInfo parses one metadata document from the media-info
// collection.
func (s *Store) ReadMediaInfo(file string) (map[string]any, error) {
	path := s.EntryPath(CollectionMediaInfo, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read media info %s: %w", file, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse media info %s: %w", file, err)
	}
	return doc, nil
}

// Keyframes lists up to limit .jpg frames for one video, in listing
// order. A video without a keyframes directory yields no frames and no
// error.
func (s *Store) Keyframes(videoID string, limit int) ([]string, error) {
	dir := filepath.Join(s.Root, CollectionKeyframes, videoID)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list keyframes for %s: %w", videoID, err)
	}

	frames := make([]string, 0, limit)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".jpg") {
			continue
		}
		frames = append(frames, e.Name())
		if limit > 0 && len(frames) == limit {
			break
		}
	}
	return frames, nil
}

// KeyframePath resolves one frame image on disk.
func (s *Store) KeyframePath(videoID, frameFile string) string {
	return filepath.Join(s.Root, CollectionKeyframes, videoID, frameFile)
}

// VideoID derives the video identifier from a metadata filename.
func VideoID(mediaInfoFile string) string {
	return strings.TrimSuffix(mediaInfoFile, filepath.Ext(mediaInfoFile))
}
