package geometry

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPathEndpoints(t *testing.T) {
	p := NewPath(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.QuadTo(Pt(20, 0), Pt(20, 10))

	if got := p.StartPoint(); got != Pt(0, 0) {
		t.Errorf("StartPoint = %v, want (0, 0)", got)
	}
	if got := p.EndPoint(); got != Pt(20, 10) {
		t.Errorf("EndPoint = %v, want (20, 10)", got)
	}
	if p.Len() != 3 {
		t.Errorf("Len = %d, want 3", p.Len())
	}
	if got := p.Length(); got != 30 {
		t.Errorf("Length = %v, want 30", got)
	}
}

func TestPathStartPointPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StartPoint on a zero Path should panic")
		}
	}()
	var p Path
	p.StartPoint()
}

func TestPathCommandsIsCopy(t *testing.T) {
	p := NewPath(Pt(1, 1))
	cmds := p.Commands()
	cmds[0].To = Pt(99, 99)
	if p.StartPoint() != Pt(1, 1) {
		t.Error("mutating Commands() result must not change the path")
	}
}

func TestPathString(t *testing.T) {
	p := NewPath(Pt(430, 307.5))
	p.LineTo(Pt(396, 307.5))
	p.QuadTo(Pt(390, 307.5), Pt(390, 301.5))

	want := "M430 307.5 L396 307.5 Q390 307.5 390 301.5"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathJSON(t *testing.T) {
	p := NewPath(Pt(0, 0))
	p.LineTo(Pt(5, 0))
	p.QuadTo(Pt(10, 0), Pt(10, 5))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"op":"Q"`) {
		t.Errorf("encoded path missing quad op: %s", data)
	}

	var got Path
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.String() != p.String() {
		t.Errorf("decoded %q, want %q", got.String(), p.String())
	}
}

func TestPathUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", `[]`},
		{"no leading move", `[{"op":"L","points":[{"x":1,"y":1}]}]`},
		{"unknown op", `[{"op":"M","points":[{"x":0,"y":0}]},{"op":"C","points":[]}]`},
		{"quad missing control", `[{"op":"M","points":[{"x":0,"y":0}]},{"op":"Q","points":[{"x":1,"y":1}]}]`},
		{"not an array", `{"op":"M"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Path
			if err := json.Unmarshal([]byte(tt.input), &p); err == nil {
				t.Error("expected error")
			}
		})
	}
}
