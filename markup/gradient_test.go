package markup

import (
	"reflect"
	"testing"
)

var (
	pureRed  = RGB{255, 0, 0}
	pureBlue = RGB{0, 0, 255}
	black    = RGB{0, 0, 0}
	white    = RGB{255, 255, 255}
)

func TestGradient(t *testing.T) {
	if got := Gradient(pureRed, pureBlue, 2); !reflect.DeepEqual(got, []RGB{pureRed, pureBlue}) {
		t.Fatalf("steps=2: got %v", got)
	}
	if got := Gradient(pureRed, pureBlue, 1); !reflect.DeepEqual(got, []RGB{pureRed}) {
		t.Fatalf("steps=1: got %v", got)
	}
	if got := Gradient(pureRed, pureBlue, 0); !reflect.DeepEqual(got, []RGB{pureRed}) {
		t.Fatalf("steps=0: got %v", got)
	}
	want := []RGB{black, {128, 128, 128}, white}
	if got := Gradient(black, white, 3); !reflect.DeepEqual(got, want) {
		t.Fatalf("steps=3: got %v want %v", got, want)
	}
}

func TestMultiGradient_SingleStop(t *testing.T) {
	for _, steps := range []int{1, 4, 9} {
		got := MultiGradient([]RGB{Gold.RGB}, steps)
		if len(got) != steps {
			t.Fatalf("steps=%d: got len %d", steps, len(got))
		}
		for i, c := range got {
			if c != Gold.RGB {
				t.Fatalf("steps=%d: element %d is %v", steps, i, c)
			}
		}
	}
}

func TestMultiGradient_TwoStops(t *testing.T) {
	// steps are spread over the segment, so the second of two steps sits at
	// the midpoint rather than on the final stop.
	want := []RGB{pureRed, {128, 0, 128}}
	if got := MultiGradient([]RGB{pureRed, pureBlue}, 2); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	// Gradient is the one to use when both endpoints must be exact
	if got := Gradient(pureRed, pureBlue, 2); got[len(got)-1] != pureBlue {
		t.Fatalf("Gradient end: got %v", got[len(got)-1])
	}
}

func TestMultiGradient_ThreeStops(t *testing.T) {
	want := []RGB{black, {170, 170, 170}, {170, 170, 170}}
	if got := MultiGradient([]RGB{black, white, black}, 3); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMultiGradient_Rainbow(t *testing.T) {
	got := MultiGradient(RainbowStops, 7)
	if len(got) != 7 {
		t.Fatalf("len: got %d want 7", len(got))
	}
	if got[0] != pureRed {
		t.Fatalf("first: got %v want %v", got[0], pureRed)
	}
	if want := (RGB{20, 0, 255}); got[6] != want {
		t.Fatalf("last: got %v want %v", got[6], want)
	}
	if got := MultiGradient(RainbowStops, 0); len(got) != 0 {
		t.Fatalf("steps=0: got %v", got)
	}
}

func TestInterpolate(t *testing.T) {
	cases := []struct {
		ratio float64
		want  RGB
	}{
		{-1, black},
		{0, black},
		{0.5, RGB{128, 128, 128}},
		{1, white},
		{2, white},
	}
	for _, tc := range cases {
		if got := Interpolate(black, white, tc.ratio); got != tc.want {
			t.Fatalf("ratio %v: got %v want %v", tc.ratio, got, tc.want)
		}
	}
}
