package torosphere_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jaufderheide/torosphere"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCrossSectionSegments(t *testing.T) {
	const nArc = 16
	segs, g, err := torosphere.CrossSectionSegments(reference, nArc)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 8 {
		t.Fatalf("got %d segments, want 8", len(segs))
	}
	wantLen := [8]int{nArc, nArc, 2, 2, 2, nArc, nArc, 2}
	for i, s := range segs {
		if s.ID != torosphere.SegmentID(i) {
			t.Errorf("segment %d: out of traversal order, got %v", i, s.ID)
		}
		if len(s.V) != wantLen[i] {
			t.Errorf("%v: got %d samples, want %d", s.ID, len(s.V), wantLen[i])
		}
	}
	// Junctions: each segment ends where the next begins, and the apex
	// flat ends at the inner crown start, closing the ring of segments.
	tol := 1e-9 * reference.D
	for i := range segs {
		end := segs[i].V[len(segs[i].V)-1]
		start := segs[(i+1)%len(segs)].V[0]
		if !vecEqualWithin(end, start, tol) {
			t.Errorf("%v -> %v: junction gap, %v vs %v", segs[i].ID, segs[(i+1)%len(segs)].ID, end, start)
		}
	}
	// The knuckle-flange junction is exact: theta=0 lands on (D/2, h).
	if got := segs[1].V[len(segs[1].V)-1]; got != (r2.Vec{X: reference.D / 2, Y: reference.H}) {
		t.Errorf("inner knuckle end: got %v, want (D/2, h)", got)
	}
	// Both arcs meet the tangency point computed analytically.
	if !vecEqualWithin(segs[0].V[nArc-1], r2.Vec{X: g.Rt, Y: g.Zt}, tol) {
		t.Errorf("inner crown end %v not at tangency point (%g, %g)", segs[0].V[nArc-1], g.Rt, g.Zt)
	}
	if !vecEqualWithin(segs[5].V[nArc-1], r2.Vec{X: g.RtOut, Y: g.ZtOut}, tol) {
		t.Errorf("outer knuckle end %v not at tangency point (%g, %g)", segs[5].V[nArc-1], g.RtOut, g.ZtOut)
	}
}

func TestCrossSectionClosure(t *testing.T) {
	for _, nArc := range []int{1, 2, 3, 8, 64} {
		prof, err := torosphere.CrossSection(reference, nArc)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(prof), torosphere.ProfileRows(nArc); got != want {
			t.Errorf("nArc=%d: got %d rows, want %d", nArc, got, want)
		}
		if !prof.Closed() {
			t.Errorf("nArc=%d: profile not closed: first %v, last %v", nArc, prof[0], prof[len(prof)-1])
		}
		// No doubled junction points: the only coincident consecutive
		// pair is the explicit closure at the very end.
		for i := 1; i < len(prof)-1; i++ {
			if prof[i] == prof[i-1] {
				t.Errorf("nArc=%d: rows %d and %d coincide at %v", nArc, i-1, i, prof[i])
			}
		}
		if prof[len(prof)-1] != prof[0] {
			t.Errorf("nArc=%d: closure row does not repeat the first sample", nArc)
		}
	}
}

// Row ranges are a pure function of sampling density; they must match
// the rows the concatenation policy actually assigns to each segment.
func TestSegmentRowRangesAgainstProfile(t *testing.T) {
	const nArc = 8
	segs, _, err := torosphere.CrossSectionSegments(reference, nArc)
	if err != nil {
		t.Fatal(err)
	}
	prof := torosphere.JoinSegments(segs)
	tol := 1e-9 * reference.D
	for k, rr := range torosphere.SegmentRowRanges(nArc) {
		seg := segs[k]
		if rr.ID != seg.ID {
			t.Fatalf("range %d: got %v, want %v", k, rr.ID, seg.ID)
		}
		for row := rr.Start; row <= rr.End && row < len(prof)-1; row++ {
			if !vecEqualWithin(prof[row], seg.V[row-rr.Start], tol) {
				t.Errorf("%v: row %d is %v, segment sample is %v", rr.ID, row, prof[row], seg.V[row-rr.Start])
			}
		}
	}
}

func TestSegmentRowRangesTile(t *testing.T) {
	for _, nArc := range []int{1, 2, 3, 5, 64} {
		ranges := torosphere.SegmentRowRanges(nArc)
		if len(ranges) != 8 {
			t.Fatalf("nArc=%d: got %d ranges, want 8", nArc, len(ranges))
		}
		if ranges[0].Start != 0 {
			t.Errorf("nArc=%d: first range starts at %d", nArc, ranges[0].Start)
		}
		for i := 1; i < len(ranges); i++ {
			if ranges[i].Start != ranges[i-1].End {
				t.Errorf("nArc=%d: gap between %v (end %d) and %v (start %d)",
					nArc, ranges[i-1].ID, ranges[i-1].End, ranges[i].ID, ranges[i].Start)
			}
		}
		last := ranges[len(ranges)-1]
		if want := torosphere.ProfileRows(nArc) - 1; last.End != want {
			t.Errorf("nArc=%d: last range ends at %d, want %d", nArc, last.End, want)
		}
	}
	// Reference density from the worked example.
	if rows := torosphere.ProfileRows(64); rows != 258 {
		t.Errorf("nArc=64: got %d total rows, want 258", rows)
	}
}

func TestCrossSectionInvalid(t *testing.T) {
	bad := reference
	bad.Rk = 500
	if _, err := torosphere.CrossSection(bad, 8); !errors.Is(err, torosphere.ErrKnuckleExceedsBore) {
		t.Fatalf("got %v, want %v", err, torosphere.ErrKnuckleExceedsBore)
	}
}

func vecEqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
