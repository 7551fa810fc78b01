package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func geometry() []SectionOffset {
	return []SectionOffset{
		{ID: "intro", Top: 0},
		{ID: "speakers", Top: 40},
		{ID: "concepts", Top: 80},
	}
}

func TestNoActiveSectionBeforeActivationLine(t *testing.T) {
	s := NewService()
	s.SetGeometry([]SectionOffset{{ID: "late", Top: 50}}, 200, 30)

	snap := s.Snapshot(0)
	assert.Equal(t, "", snap.ActiveSectionID)
}

func TestLastCrossedSectionWins(t *testing.T) {
	s := NewService()
	s.SetGeometry(geometry(), 200, 30)

	assert.Equal(t, "intro", s.Snapshot(0).ActiveSectionID)
	assert.Equal(t, "intro", s.Snapshot(36).ActiveSectionID)
	assert.Equal(t, "speakers", s.Snapshot(37).ActiveSectionID)
	assert.Equal(t, "concepts", s.Snapshot(150).ActiveSectionID)
}

func TestPackedSectionsFavorTheLater(t *testing.T) {
	s := NewService()
	s.SetGeometry([]SectionOffset{
		{ID: "a", Top: 10},
		{ID: "b", Top: 11},
		{ID: "c", Top: 12},
	}, 100, 20)

	// All three tops are within the activation window at once
	assert.Equal(t, "c", s.Snapshot(10).ActiveSectionID)
}

func TestProgressClampedToRange(t *testing.T) {
	s := NewService()
	s.SetGeometry(geometry(), 130, 30)

	assert.Equal(t, 0.0, s.Snapshot(0).ProgressPercent)
	assert.Equal(t, 50.0, s.Snapshot(50).ProgressPercent)
	assert.Equal(t, 100.0, s.Snapshot(100).ProgressPercent)
	// Overscroll clamps instead of exceeding 100
	assert.Equal(t, 100.0, s.Snapshot(500).ProgressPercent)
}

func TestShortDocumentReportsZeroProgress(t *testing.T) {
	s := NewService()

	// Document exactly as tall as the viewport: divisor would be zero
	s.SetGeometry(geometry(), 30, 30)
	snap := s.Snapshot(0)
	assert.Equal(t, 0.0, snap.ProgressPercent)

	// Shorter than the viewport
	s.SetGeometry(geometry(), 10, 30)
	snap = s.Snapshot(5)
	assert.Equal(t, 0.0, snap.ProgressPercent)
}

func TestBackToTopThreshold(t *testing.T) {
	s := NewService()
	s.SetGeometry(geometry(), 200, 30)

	assert.False(t, s.Snapshot(0).ShowBackToTop)
	assert.False(t, s.Snapshot(DefaultBackToTopOffset).ShowBackToTop)
	assert.True(t, s.Snapshot(DefaultBackToTopOffset+1).ShowBackToTop)
}

func TestMaxOffsetNeverNegative(t *testing.T) {
	s := NewService()
	s.SetGeometry(nil, 10, 40)
	assert.Equal(t, 0, s.MaxOffset())

	s.SetGeometry(nil, 100, 40)
	assert.Equal(t, 60, s.MaxOffset())
}
