package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected pixel set at origin")
	}

	// Out of bounds is a no-op
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)

	if c.Grid[0][0] == 0x2800 {
		t.Error("expected start of line set")
	}
	if c.Grid[4][9] == 0x2800 {
		t.Error("expected end of line set")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(10, 20, 3)

	if c.Grid[5][5] == 0x2800 {
		t.Error("expected circle center set")
	}

	// Zero radius still marks the center point
	c2 := NewCanvas(10, 10)
	c2.FillCircle(4, 4, 0)
	if c2.Grid[1][2] == 0x2800 {
		t.Error("expected single pixel for zero radius")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(8, 3)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 8 {
			t.Errorf("expected 8 runes per line, got %d", len([]rune(line)))
		}
	}
}

func TestCanvasRowsIsCopy(t *testing.T) {
	c := NewCanvas(4, 2)
	rows := c.Rows()
	rows[0][0] = 'X'

	if c.Grid[0][0] == 'X' {
		t.Error("Rows should return a copy, not the backing grid")
	}
}
