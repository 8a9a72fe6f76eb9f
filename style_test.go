package autosize

import "testing"

func TestFullBleed(t *testing.T) {
	caller := Style{
		Width:   Fixed(5),
		Height:  Fixed(6),
		Padding: EdgeAll(1),
		Props:   map[string]string{"height": "2", "background": "blue"},
	}

	got := fullBleed(caller)

	if got.Width != Percent(100) || got.Height != Percent(100) {
		t.Errorf("fullBleed size = %v x %v, want 100%% x 100%%", got.Width, got.Height)
	}
	if got.Padding != EdgeAll(1) {
		t.Errorf("Padding = %+v, want %+v", got.Padding, EdgeAll(1))
	}
	if _, ok := got.Prop("height"); ok {
		t.Error("height property was not removed")
	}
	if v, _ := got.Prop("background"); v != "blue" {
		t.Errorf("background = %q, want blue", v)
	}
	if _, ok := caller.Props["height"]; !ok {
		t.Error("fullBleed mutated the caller's Props")
	}
}

func TestFullBleed_SizePropSpellings(t *testing.T) {
	type tc struct {
		key string
	}

	tests := map[string]tc{
		"lower":      {key: "width"},
		"title":      {key: "Width"},
		"upper":      {key: "HEIGHT"},
		"mixed":      {key: "hEiGhT"},
		"whitespace": {key: " width "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := fullBleed(Style{Props: map[string]string{tt.key: "7", "color": "red"}})
			if _, ok := got.Props[tt.key]; ok {
				t.Errorf("property %q survived fullBleed", tt.key)
			}
			if want := "width: 100%; height: 100%; color: red;"; got.String() != want {
				t.Errorf("String() = %q, want %q", got.String(), want)
			}
		})
	}
}

func TestStyle_String(t *testing.T) {
	type tc struct {
		style Style
		want  string
	}

	tests := map[string]tc{
		"sizing only": {
			style: fullBleed(Style{}),
			want:  "width: 100%; height: 100%;",
		},
		"everything": {
			style: Style{
				Width:   Fixed(10),
				Height:  Auto(),
				Padding: EdgeTRBL(1, 2, 3, 4),
				Border:  true,
				Props:   map[string]string{"z": "1", "color": "red"},
			},
			want: "width: 10; height: auto; padding: 1 2 3 4; border: single; color: red; z: 1;",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElement_LayoutAndContentBox(t *testing.T) {
	type tc struct {
		style       Style
		parent      Box
		wantBounds  Box
		wantContent Box
	}

	tests := map[string]tc{
		"full bleed": {
			style:       fullBleed(Style{}),
			parent:      NewBox(5, 5, 80, 24),
			wantBounds:  NewBox(5, 5, 80, 24),
			wantContent: NewBox(5, 5, 80, 24),
		},
		"border and padding": {
			style:       fullBleed(Style{Border: true, Padding: EdgeSymmetric(0, 1)}),
			parent:      NewBox(0, 0, 20, 10),
			wantBounds:  NewBox(0, 0, 20, 10),
			wantContent: NewBox(2, 1, 16, 8),
		},
		"half width": {
			style:       Style{Width: Percent(50), Height: Auto()},
			parent:      NewBox(0, 0, 41, 9),
			wantBounds:  NewBox(0, 0, 20.5, 9),
			wantContent: NewBox(0, 0, 20.5, 9),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			el := NewElement("", tt.style)
			if got := el.Layout(tt.parent); got != tt.wantBounds {
				t.Errorf("Layout() = %+v, want %+v", got, tt.wantBounds)
			}
			if got := el.ContentBox(); got != tt.wantContent {
				t.Errorf("ContentBox() = %+v, want %+v", got, tt.wantContent)
			}
		})
	}
}
