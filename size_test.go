package autosize

import (
	"math"
	"testing"
)

func TestSizeOf(t *testing.T) {
	type tc struct {
		w, h float64
		want Size
	}

	tests := map[string]tc{
		"whole numbers": {
			w: 800, h: 600,
			want: Size{Width: 800, Height: 600},
		},
		"fractions are truncated not rounded": {
			w: 123.7, h: 456.9,
			want: Size{Width: 123, Height: 456},
		},
		"below one": {
			w: 0.99, h: 0.5,
			want: Size{},
		},
		"negative clamps to zero": {
			w: -3.2, h: 10,
			want: Size{Width: 0, Height: 10},
		},
		"NaN clamps to zero": {
			w: math.NaN(), h: 4.4,
			want: Size{Width: 0, Height: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SizeOf(tt.w, tt.h); got != tt.want {
				t.Errorf("SizeOf(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestSize_String(t *testing.T) {
	if got := (Size{Width: 80, Height: 24}).String(); got != "80x24" {
		t.Errorf("String() = %q, want %q", got, "80x24")
	}
	if !(Size{}).IsZero() {
		t.Error("Size{}.IsZero() = false, want true")
	}
}

func TestBox_Inset(t *testing.T) {
	type tc struct {
		box   Box
		edges Edges
		want  Box
	}

	tests := map[string]tc{
		"uniform": {
			box:   NewBox(0, 0, 10, 8),
			edges: EdgeAll(1),
			want:  NewBox(1, 1, 8, 6),
		},
		"trbl": {
			box:   NewBox(2, 3, 20, 10),
			edges: EdgeTRBL(1, 2, 3, 4),
			want:  NewBox(6, 4, 14, 6),
		},
		"clamps at zero": {
			box:   NewBox(0, 0, 3, 3),
			edges: EdgeAll(5),
			want:  NewBox(5, 5, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.box.Inset(tt.edges); got != tt.want {
				t.Errorf("Inset() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBox_IsEmpty(t *testing.T) {
	type tc struct {
		box  Box
		want bool
	}

	tests := map[string]tc{
		"zero":            {box: Box{}, want: true},
		"zero width":      {box: NewBox(2, 1, 0, 5), want: true},
		"negative height": {box: NewBox(0, 0, 4, -1), want: true},
		"area":            {box: NewBox(0, 0, 0.5, 0.5), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.box.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		v    Value
		want float64
	}

	tests := map[string]tc{
		"auto uses fallback": {v: Auto(), want: 7},
		"fixed":              {v: Fixed(12), want: 12},
		"percent":            {v: Percent(50), want: 40},
		"full":               {v: Percent(100), want: 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.v.Resolve(80, 7); got != tt.want {
				t.Errorf("Resolve(80, 7) = %v, want %v", got, tt.want)
			}
		})
	}
}
