package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"framepick/internal/dataset"
	"framepick/internal/model"
)

// DefaultMaxFramesPerVideo caps how many keyframes one matched video
// contributes to a result set.
const DefaultMaxFramesPerVideo = 10

// LocalSource scans every media-info document under the dataset root
// and emits keyframe records for documents containing the query string.
// There is no ranking: a document either matches or it does not, and
// matches appear in directory-listing order.
type LocalSource struct {
	Store       *dataset.Store
	Log         *slog.Logger
	MaxPerVideo int
}

func NewLocalSource(store *dataset.Store, log *slog.Logger) *LocalSource {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LocalSource{
		Store:       store,
		Log:         log,
		MaxPerVideo: DefaultMaxFramesPerVideo,
	}
}

func (s *LocalSource) Search(ctx context.Context, q Query) ([]model.ResultRecord, error) {
	text, err := q.EffectiveText()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)

	files, err := s.Store.MediaInfoFiles()
	if err != nil {
		return nil, err
	}

	var out []model.ResultRecord
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := s.Store.ReadMediaInfo(file)
		if err != nil {
			s.Log.Warn("skipping unreadable media info", "file", file, "error", err)
			continue
		}
		if !matches(doc, needle) {
			continue
		}

		videoID := dataset.VideoID(file)
		frames, err := s.Store.Keyframes(videoID, s.MaxPerVideo)
		if err != nil {
			s.Log.Warn("skipping unreadable keyframes", "video", videoID, "error", err)
			continue
		}
		for i, frame := range frames {
			meta := make(map[string]any, len(doc)+1)
			for k, v := range doc {
				meta[k] = v
			}
			meta["frame_number"] = i

			out = append(out, model.ResultRecord{
				FrameID:      strings.TrimSuffix(frame, ".jpg"),
				VideoName:    videoID,
				KeyframePath: s.Store.KeyframePath(videoID, frame),
				Metadata:     meta,
			})
		}
	}
	return out, nil
}

// matches tests case-folded containment against the serialized document,
// keys and values alike. A document either matches or it does not.
func matches(doc map[string]any, needle string) bool {
	serialized, err := json.Marshal(doc)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(serialized)), needle)
}
