package wisp

import "testing"

func TestTrailBounded(t *testing.T) {
	tr := NewTrail(true)
	for i := 0; i < 12; i++ {
		tr.Push(Vec2{X: float64(i)})
		want := i + 1
		if want > TrailLength {
			want = TrailLength
		}
		if tr.Len() != want {
			t.Fatalf("after %d pushes Len = %d, want %d", i+1, tr.Len(), want)
		}
	}
}

func TestTrailMostRecentFirst(t *testing.T) {
	tr := NewTrail(true)
	for i := 0; i < 7; i++ {
		tr.Push(Vec2{X: float64(i)})
	}
	pts := tr.Points()
	want := []float64{6, 5, 4, 3, 2}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i, x := range want {
		if pts[i].X != x {
			t.Errorf("Points[%d].X = %v, want %v", i, pts[i].X, x)
		}
	}
}

func TestTrailDisabled(t *testing.T) {
	tr := NewTrail(false)
	tr.Push(Vec2{1, 1})
	if tr.Enabled() || tr.Len() != 0 {
		t.Errorf("disabled trail: Enabled=%v Len=%d", tr.Enabled(), tr.Len())
	}
}

func TestTrailAtOutOfRangePanics(t *testing.T) {
	tr := NewTrail(true)
	tr.Push(Vec2{})
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	tr.At(1)
}

func TestTrailDecay(t *testing.T) {
	tr := NewTrail(true)
	tr.Push(Vec2{X: 0})
	tr.Decay(0.2)
	tr.Push(Vec2{X: 1})
	tr.Decay(0.1)

	// The first sample is 0.3s old and expires; the second is 0.1s old.
	if tr.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tr.Len())
	}
	if tr.At(0).X != 1 {
		t.Errorf("At(0).X = %v, want 1", tr.At(0).X)
	}
	assertNear(t, "age", tr.Age(0), 0.1)

	tr.Decay(TrailLifetime)
	if tr.Len() != 0 {
		t.Errorf("Len = %d, want 0 once every sample expired", tr.Len())
	}
}

func TestTrailWeightDecreasing(t *testing.T) {
	assertNear(t, "weight(0)", TrailWeight(0), 1)
	for i := 1; i < TrailLength; i++ {
		if TrailWeight(i) >= TrailWeight(i-1) {
			t.Errorf("TrailWeight(%d) = %v, not below TrailWeight(%d) = %v",
				i, TrailWeight(i), i-1, TrailWeight(i-1))
		}
		if TrailWeight(i) <= 0 {
			t.Errorf("TrailWeight(%d) = %v, want positive", i, TrailWeight(i))
		}
	}
}

func TestTrailReset(t *testing.T) {
	tr := NewTrail(true)
	for i := 0; i < 3; i++ {
		tr.Push(Vec2{X: float64(i)})
	}
	tr.Reset()
	if tr.Len() != 0 {
		t.Fatalf("Len = %d after Reset, want 0", tr.Len())
	}
	tr.Push(Vec2{X: 9})
	if tr.Len() != 1 || tr.At(0).X != 9 {
		t.Errorf("after Reset and Push: Len = %d, At(0) = %v", tr.Len(), tr.At(0))
	}
}
