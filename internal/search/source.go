// Package search turns a query into an ordered list of result records.
// Two sources exist behind one interface: a synthetic mock generator
// and a linear scan over the local dataset's metadata documents.
package search

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"framepick/internal/model"
)

// ErrNoInput reports a query with neither text, nor an image, nor an
// uploaded query file.
var ErrNoInput = errors.New("no query input provided")

// Query carries the user's inputs. Text is the free-text query;
// ImagePath and TextFilePath point at uploaded files. Image and
// multimodal queries degrade to the text path, there is no similarity
// search.
type Query struct {
	Text         string
	ImagePath    string
	TextFilePath string
}

func (q Query) Empty() bool {
	return strings.TrimSpace(q.Text) == "" && q.ImagePath == "" && q.TextFilePath == ""
}

// EffectiveText resolves the string actually matched against the
// dataset: an uploaded query file contributes its contents, an
// image-only query a fixed substitute marker.
func (q Query) EffectiveText() (string, error) {
	if q.TextFilePath != "" {
		data, err := os.ReadFile(q.TextFilePath)
		if err != nil {
			return "", fmt.Errorf("read query file %s: %w", q.TextFilePath, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if strings.TrimSpace(q.Text) != "" {
		return strings.TrimSpace(q.Text), nil
	}
	if q.ImagePath != "" {
		return "image_search", nil
	}
	return "", ErrNoInput
}

// Source is chosen once at startup; callers never branch on the
// concrete implementation.
type Source interface {
	Search(ctx context.Context, q Query) ([]model.ResultRecord, error)
}
