// Package inspect summarizes individual dataset files for display:
// metadata documents, keyframe maps, feature arrays, media files.
package inspect

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/sbinet/npyio"
)

const (
	KindJSON  = "json"
	KindCSV   = "csv"
	KindNumpy = "npy"
	KindImage = "image"
	KindVideo = "video"
	KindText  = "text"
)

const csvPreviewRows = 20

// Summary is one file rendered for terminal display. CSV files carry
// tabular rows; everything else carries preformatted text.
type Summary struct {
	Path string
	Kind string
	Text string
	Rows [][]string
}

// File summarizes path according to its extension.
func File(path string) (Summary, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonSummary(path)
	case ".csv":
		return csvSummary(path)
	case ".npy":
		return npySummary(path)
	case ".jpg", ".jpeg", ".png":
		return imageSummary(path)
	case ".mp4":
		return videoSummary(path)
	default:
		return textSummary(path)
	}
}

func jsonSummary(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", path, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Summary{}, fmt.Errorf("parse JSON %s: %w", path, err)
	}
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Summary{}, fmt.Errorf("render JSON %s: %w", path, err)
	}
	return Summary{Path: path, Kind: KindJSON, Text: string(pretty)}, nil
}

func csvSummary(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows := make([][]string, 0, csvPreviewRows)
	truncated := false
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		if len(rows) == csvPreviewRows {
			truncated = true
			break
		}
		rows = append(rows, row)
	}

	text := ""
	if truncated {
		text = fmt.Sprintf("(first %d rows shown)", csvPreviewRows)
	}
	return Summary{Path: path, Kind: KindCSV, Rows: rows, Text: text}, nil
}

func npySummary(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return Summary{}, fmt.Errorf("parse NumPy file %s: %w", path, err)
	}

	shape := r.Header.Descr.Shape
	size := 1
	for _, dim := range shape {
		size *= dim
	}

	var b strings.Builder
	fmt.Fprintf(&b, "shape: %v\n", shape)
	fmt.Fprintf(&b, "dtype: %s\n", r.Header.Descr.Type)
	fmt.Fprintf(&b, "elements: %d\n", size)
	fmt.Fprintf(&b, "fortran order: %v", r.Header.Descr.Fortran)
	return Summary{Path: path, Kind: KindNumpy, Text: b.String()}, nil
}

func imageSummary(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	cfg, kind, err := image.DecodeConfig(f)
	if err != nil {
		return Summary{}, fmt.Errorf("decode image %s: %w", path, err)
	}
	text := fmt.Sprintf("format: %s\nsize: %dx%d", kind, cfg.Width, cfg.Height)
	return Summary{Path: path, Kind: KindImage, Text: text}, nil
}

func videoSummary(path string) (Summary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Summary{}, fmt.Errorf("stat %s: %w", path, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "file: %s\n", filepath.Base(path))
	fmt.Fprintf(&b, "size: %s\n", bytesIEC(info.Size()))
	b.WriteString("playback is not supported here; use an external player")
	return Summary{Path: path, Kind: KindVideo, Text: b.String()}, nil
}

func bytesIEC(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(1024), 0
	for q := n / 1024; q >= 1024; q /= 1024 {
		div *= 1024
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

const textPreviewBytes = 4096

func textSummary(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, textPreviewBytes+1)
	n, _ := f.Read(buf)
	text := string(buf[:min(n, textPreviewBytes)])
	if n > textPreviewBytes {
		text += "\n... (truncated)"
	}
	return Summary{Path: path, Kind: KindText, Text: text}, nil
}
