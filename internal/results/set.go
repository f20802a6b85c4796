// Package results holds the current search results and the user's
// selection subset.
package results

import "framepick/internal/model"

// Set is an ordered result collection plus a selected-id subset. Every
// selected id always refers to a record currently in the set; Replace
// drops stale selections wholesale.
type Set struct {
	records  []model.ResultRecord
	selected map[string]bool
}

func NewSet() *Set {
	return &Set{selected: make(map[string]bool)}
}

// Replace swaps in a new result list and empties the selection.
func (s *Set) Replace(records []model.ResultRecord) {
	s.records = records
	s.selected = make(map[string]bool)
}

func (s *Set) Records() []model.ResultRecord {
	return s.records
}

func (s *Set) Len() int {
	return len(s.records)
}

// Toggle marks or unmarks one record. Unknown ids are ignored.
func (s *Set) Toggle(frameID string, on bool) {
	if !s.contains(frameID) {
		return
	}
	if on {
		s.selected[frameID] = true
		return
	}
	delete(s.selected, frameID)
}

func (s *Set) IsSelected(frameID string) bool {
	return s.selected[frameID]
}

func (s *Set) SelectAll() {
	for _, r := range s.records {
		s.selected[r.FrameID] = true
	}
}

// ClearSelection empties the selection without touching the records.
func (s *Set) ClearSelection() {
	s.selected = make(map[string]bool)
}

func (s *Set) SelectedCount() int {
	return len(s.selected)
}

// Selected returns the selected records in result order.
func (s *Set) Selected() []model.ResultRecord {
	out := make([]model.ResultRecord, 0, len(s.selected))
	for _, r := range s.records {
		if s.selected[r.FrameID] {
			out = append(out, r)
		}
	}
	return out
}

func (s *Set) contains(frameID string) bool {
	for _, r := range s.records {
		if r.FrameID == frameID {
			return true
		}
	}
	return false
}
