package elementary

import "testing"

func TestRule90Sierpinski(t *testing.T) {
	e := New(Config{Width: 9, Height: 4, Rule: 90})
	e.Reset(0)
	e.Step()
	e.Step()

	want := []string{
		"..1...1..",
		"...1.1...",
		"....1....",
		".........",
	}
	for y, row := range want {
		for x, ch := range row {
			v := e.Cells().At(x, y)
			if (ch == '1') != (v == 1) {
				t.Fatalf("cell (%d,%d) = %d, want %q", x, y, v, ch)
			}
		}
	}
}

func TestRuleWrapsAtEdges(t *testing.T) {
	e := New(Config{Width: 5, Height: 2, Rule: 90})
	e.Cells().Set(0, 0, 1)
	e.Step()
	if e.Cells().At(4, 0) != 1 || e.Cells().At(1, 0) != 1 {
		t.Fatalf("neighbours across the edge did not fire")
	}
	if e.Cells().At(0, 1) != 1 {
		t.Fatalf("history did not scroll")
	}
}

func TestParameters(t *testing.T) {
	e := New(FromMap(map[string]string{"rule": "30", "w": "16", "h": "300"}))
	m := e.Parameters().Map()
	if m["rule"] != "30" || m["w"] != "16" || m["h"] != "300" {
		t.Fatalf("snapshot = %v", m)
	}
	if FromMap(map[string]string{"rule": "256"}).Rule != 110 {
		t.Fatalf("out of range rule accepted")
	}
}
