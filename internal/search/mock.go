package search

import (
	"context"
	"fmt"

	"framepick/internal/model"
)

// mockResultCount mirrors the demo batch size the tool has always
// produced without a configured dataset.
const mockResultCount = 20

// MockSource synthesizes a fixed result batch for demo and UI work
// without a dataset on disk. Five frames per synthetic video.
type MockSource struct {
	Count int
}

func NewMockSource() *MockSource {
	return &MockSource{Count: mockResultCount}
}

func (s *MockSource) Search(ctx context.Context, q Query) ([]model.ResultRecord, error) {
	if _, err := q.EffectiveText(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]model.ResultRecord, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		video := i/5 + 1
		out = append(out, model.ResultRecord{
			FrameID:   fmt.Sprintf("frame_%04d", i),
			VideoName: fmt.Sprintf("video_%d", video),
			Metadata: map[string]any{
				"video_name":   fmt.Sprintf("sample_video_%d.mp4", video),
				"frame_number": i * 10,
				"timestamp":    fmt.Sprintf("00:0%d:%02d", i/10, (i*6)%60),
				"image_url":    fmt.Sprintf("https://picsum.photos/200/150?random=%d", i),
			},
		})
	}
	return out, nil
}
