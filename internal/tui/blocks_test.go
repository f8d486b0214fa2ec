package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/dm/cpugraph/internal/model"
)

func TestNewBlockGraph_RejectsInvalidSize(t *testing.T) {
	if _, err := NewBlockGraph(0); err == nil {
		t.Fatal("expected error for window size 0")
	}
}

func TestBlockGraph_EmptyWindow(t *testing.T) {
	g, err := NewBlockGraph(10)
	if err != nil {
		t.Fatal(err)
	}
	g.SetSize(10, 4)

	rows := frameRunes(g.View())
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if string(row) != strings.Repeat(" ", 10) {
			t.Errorf("row %d: expected blank row, got %q", i, string(row))
		}
	}
}

func TestBlockGraph_MinAndMaxColumns(t *testing.T) {
	g, err := NewBlockGraph(10)
	if err != nil {
		t.Fatal(err)
	}
	g.SetSize(10, 4)

	now := time.Now()
	g.OnSample(model.Sample{Timestamp: now.Add(-9 * time.Second), Value: 0})
	g.OnSample(model.Sample{Timestamp: now, Value: 100})

	rows := frameRunes(g.View())

	// The max-valued newest sample fills its full column at the right edge.
	for r := 0; r < 4; r++ {
		if rows[r][9] != '█' {
			t.Errorf("row %d col 9: expected '█', got %q", r, rows[r][9])
		}
	}

	// The min-valued oldest sample draws a single floor block bottom-left.
	if rows[3][0] != blockRunes[0] {
		t.Errorf("bottom-left: expected %q, got %q", blockRunes[0], rows[3][0])
	}
	for r := 0; r < 3; r++ {
		if rows[r][0] != ' ' {
			t.Errorf("row %d col 0: expected space above floor block, got %q", r, rows[r][0])
		}
	}
}

func TestBlockGraph_ColumnsWithoutSamplesStayEmpty(t *testing.T) {
	g, err := NewBlockGraph(10)
	if err != nil {
		t.Fatal(err)
	}
	g.SetSize(10, 4)

	now := time.Now()
	g.OnSample(model.Sample{Timestamp: now.Add(-9 * time.Second), Value: 10})
	g.OnSample(model.Sample{Timestamp: now, Value: 90})

	rows := frameRunes(g.View())

	// Interior columns received no samples and render as spaces.
	for c := 2; c < 8; c++ {
		for r := 0; r < 4; r++ {
			if rows[r][c] != ' ' {
				t.Errorf("row %d col %d: expected empty column, got %q", r, c, rows[r][c])
			}
		}
	}
}

func TestBlockGraph_SpikeSurvivesColumnSharing(t *testing.T) {
	g, err := NewBlockGraph(30)
	if err != nil {
		t.Fatal(err)
	}
	g.SetSize(10, 4)

	// 30 samples over 3 seconds share 10 columns; each column keeps its max,
	// so the single spike must still be visible as a full column.
	now := time.Now()
	for i := 0; i < 30; i++ {
		v := 10.0
		if i == 15 {
			v = 95.0
		}
		g.OnSample(model.Sample{
			Timestamp: now.Add(time.Duration(i-29) * 100 * time.Millisecond),
			Value:     v,
		})
	}

	rows := frameRunes(g.View())
	foundFull := false
	for c := 0; c < 10; c++ {
		if rows[0][c] == '█' {
			foundFull = true
		}
	}
	if !foundFull {
		t.Error("expected the spike to fill a column to the top row")
	}
}

func TestBlockGraph_TitleReportsRedrawCost(t *testing.T) {
	g, err := NewBlockGraph(5)
	if err != nil {
		t.Fatal(err)
	}
	if !titleRe.MatchString(g.Title()) {
		t.Errorf("title %q does not match %q", g.Title(), titleRe)
	}
	if !strings.HasPrefix(g.Title(), "blocks: ") {
		t.Errorf("title %q should carry the backend name", g.Title())
	}
}
