package geometry

import (
	"math"
	"testing"
)

func TestNewSnap(t *testing.T) {
	tests := []struct {
		name      string
		increment float64
		in, want  float64
	}{
		{"whole percent rounds down", 1, 12.4, 12},
		{"whole percent rounds up", 1, 12.6, 13},
		{"negative", 1, -40.5, -41},
		{"quarter increment", 0.25, 0.3, 0.25},
		{"disabled is identity", 0, 12.345, 12.345},
		{"negative increment disabled", -1, 7.7, 7.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSnap(tt.increment)(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("snap(%v) with increment %v = %v, want %v", tt.in, tt.increment, got, tt.want)
			}
		})
	}
}

func TestSampleEmpty(t *testing.T) {
	if items := Sample(nil, 1); items != nil {
		t.Errorf("expected nil for empty collection, got %v", items)
	}
}

func TestSampleReadsLayout(t *testing.T) {
	boxes := NewRow(5, 100, 150, 100)
	items := Sample(Elements(boxes), 1)

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	wantLeft := []float64{5, 105, 255}
	for i, it := range items {
		if it.Index != i {
			t.Errorf("item %d has index %d", i, it.Index)
		}
		if it.OffsetLeft != wantLeft[i] {
			t.Errorf("item %d offsetLeft = %v, want %v", i, it.OffsetLeft, wantLeft[i])
		}
		if it.ScaleX != 1 {
			t.Errorf("item %d scaleX = %v, want 1", i, it.ScaleX)
		}
		if it.XPercent != 0 {
			t.Errorf("item %d xPercent = %v, want 0", i, it.XPercent)
		}
	}
}

func TestSampleFoldsPreviousTransform(t *testing.T) {
	boxes := NewRow(0, 200)
	// Leftover from a previous run: 50px translate plus 10%
	boxes[0].X = 50
	boxes[0].XPct = 10

	items := Sample(Elements(boxes), 1)

	// 50/200*100 + 10 = 35
	if items[0].XPercent != 35 {
		t.Errorf("xPercent = %v, want 35", items[0].XPercent)
	}
	if boxes[0].X != 0 {
		t.Errorf("pixel transform not zeroed, x = %v", boxes[0].X)
	}
	if boxes[0].XPct != 35 {
		t.Errorf("xPercent not written back, got %v", boxes[0].XPct)
	}
	if got := items[0].Offset(); got != 70 {
		t.Errorf("Offset() = %v, want 70", got)
	}
}

func TestSampleDegenerateWidth(t *testing.T) {
	boxes := NewRow(0, 0, 100)
	boxes[0].X = 30 // would divide by zero without the floor

	items := Sample(Elements(boxes), 1)
	if items[0].Width != 1 {
		t.Errorf("zero width should be floored to the snap increment, got %v", items[0].Width)
	}
	if math.IsNaN(items[0].XPercent) || math.IsInf(items[0].XPercent, 0) {
		t.Errorf("xPercent is not finite: %v", items[0].XPercent)
	}

	unsnapped := Sample(Elements(NewRow(0, 0)), 0)
	if unsnapped[0].Width != MinWidth(0) {
		t.Errorf("zero width without snapping = %v, want %v", unsnapped[0].Width, MinWidth(0))
	}
}

func TestSampleInvalidScale(t *testing.T) {
	boxes := NewRow(0, 100)
	boxes[0].Scale = 0
	items := Sample(Elements(boxes), 1)
	if items[0].ScaleX != 1 {
		t.Errorf("scaleX 0 should fall back to 1, got %v", items[0].ScaleX)
	}
}
