// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// EdgeStorage buckets edges by the scanline on which they first become
// active. Edges live in a flat arena and are chained through their Next
// index, so a bucket is just a head index into the arena.
//
// Clear resets occupancy without releasing the arena or the bucket table;
// across draw calls the storage reaches a steady state with no
// allocations.
type EdgeStorage struct {
	edges   []Edge
	buckets []int32 // head per scanline, -1 when empty

	// dirtyLo/dirtyHi bound the buckets touched since the last Clear so
	// Clear does not sweep the whole table.
	dirtyLo, dirtyHi int

	minY, maxY int32 // FDot8 extent of appended edges
}

// NewEdgeStorage creates storage for a target of the given height.
func NewEdgeStorage(height int) *EdgeStorage {
	s := &EdgeStorage{}
	s.Resize(height)
	return s
}

// Resize grows the bucket table to cover height scanlines and clears it.
// Existing capacity is kept when sufficient.
func (s *EdgeStorage) Resize(height int) {
	if cap(s.buckets) < height {
		s.buckets = make([]int32, height)
	} else {
		s.buckets = s.buckets[:height]
	}
	for i := range s.buckets {
		s.buckets[i] = -1
	}
	s.edges = s.edges[:0]
	s.dirtyLo = height
	s.dirtyHi = -1
	s.minY = int32(height) << pixelBits
	s.maxY = 0
}

// Clear resets all buckets to empty, retaining allocated capacity.
func (s *EdgeStorage) Clear() {
	for y := s.dirtyLo; y <= s.dirtyHi; y++ {
		s.buckets[y] = -1
	}
	s.edges = s.edges[:0]
	s.dirtyLo = len(s.buckets)
	s.dirtyHi = -1
	s.minY = int32(len(s.buckets)) << pixelBits
	s.maxY = 0
}

// Append adds an edge, linking it into the bucket of its first scanline.
// Amortized O(1).
func (s *EdgeStorage) Append(e Edge) {
	y := int(e.Y0 >> pixelBits)
	if y < 0 || y >= len(s.buckets) {
		return
	}
	idx := int32(len(s.edges))
	e.Next = s.buckets[y]
	s.edges = append(s.edges, e)
	s.buckets[y] = idx

	if y < s.dirtyLo {
		s.dirtyLo = y
	}
	if y > s.dirtyHi {
		s.dirtyHi = y
	}
	if e.Y0 < s.minY {
		s.minY = e.Y0
	}
	if e.Y1 > s.maxY {
		s.maxY = e.Y1
	}
}

// Bucket returns the head index of the edges becoming active at scanline
// y, or -1 when none do.
func (s *EdgeStorage) Bucket(y int) int32 {
	if y < 0 || y >= len(s.buckets) {
		return -1
	}
	return s.buckets[y]
}

// Edge returns the arena edge at index i.
func (s *EdgeStorage) Edge(i int32) *Edge {
	return &s.edges[i]
}

// Empty reports whether no edges were appended since the last Clear.
func (s *EdgeStorage) Empty() bool {
	return len(s.edges) == 0
}

// Len returns the number of stored edges.
func (s *EdgeStorage) Len() int {
	return len(s.edges)
}

// YRange returns the scanline span [minY, maxY] covered by the stored
// edges, in whole pixels with maxY inclusive.
func (s *EdgeStorage) YRange() (minY, maxY int) {
	if s.Empty() {
		return 0, -1
	}
	return int(s.minY >> pixelBits), int((s.maxY - 1) >> pixelBits)
}
