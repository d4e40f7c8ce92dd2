package usecase

import (
	"math"
	"testing"
)

func TestParseVisualResponse(t *testing.T) {
	t.Run("Fenced JSON Object", func(t *testing.T) {
		raw := "```json\n{\"response\": \"prose\", \"visual\": {\"type\": \"bar\", \"title\": \"t\", \"data\": {\"columns\": [\"a\"], \"rows\": [[1]]}}}\n```"
		response, visual := parseVisualResponse(raw, "make a bar chart")
		if response != "prose" {
			t.Errorf("unexpected response: %q", response)
		}
		if visual == nil || visual.Type != "bar" {
			t.Errorf("unexpected visual: %+v", visual)
		}
	})

	t.Run("JSON Buried In Prose", func(t *testing.T) {
		raw := `Sure! {"response": "inner", "visual": null} hope that helps`
		response, visual := parseVisualResponse(raw, "nothing plot-like")
		if response != "inner" {
			t.Errorf("unexpected response: %q", response)
		}
		if visual != nil {
			t.Errorf("expected nil visual, got %+v", visual)
		}
	})

	t.Run("Unparseable Keeps Raw Text", func(t *testing.T) {
		raw := "just plain prose, no JSON here"
		response, visual := parseVisualResponse(raw, "nothing plot-like")
		if response != raw {
			t.Errorf("raw text must be kept, got %q", response)
		}
		if visual != nil {
			t.Errorf("expected nil visual, got %+v", visual)
		}
	})

	t.Run("Sine Line Fallback", func(t *testing.T) {
		_, visual := parseVisualResponse(
			"no json at all",
			"draw a line of sin(x) for [0, 1.5708, 3.1416]",
		)
		if visual == nil || visual.Type != "line" {
			t.Fatalf("expected line visual, got %+v", visual)
		}
		if len(visual.Data.Rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(visual.Data.Rows))
		}
		y := visual.Data.Rows[1][1].(float64)
		if math.Abs(y-1.0) > 1e-3 {
			t.Errorf("expected sin(pi/2) close to 1, got %v", y)
		}
	})

	t.Run("Bar Chart Fallback", func(t *testing.T) {
		_, visual := parseVisualResponse(
			"no json at all",
			"make a bar chart of apples=10 pears=7.5",
		)
		if visual == nil || visual.Type != "bar" {
			t.Fatalf("expected bar visual, got %+v", visual)
		}
		if len(visual.Data.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(visual.Data.Rows))
		}
		if visual.Data.Rows[0][0] != "apples" || visual.Data.Rows[0][1].(float64) != 10 {
			t.Errorf("unexpected first row: %+v", visual.Data.Rows[0])
		}
	})

	t.Run("No Fallback Without Structure", func(t *testing.T) {
		_, visual := parseVisualResponse("no json", "tell me about lists")
		if visual != nil {
			t.Errorf("expected nil visual, got %+v", visual)
		}
	})
}

func TestSessionMemory(t *testing.T) {
	t.Run("Recent Caps Entries", func(t *testing.T) {
		m := NewSessionMemory()
		for i := 0; i < 10; i++ {
			m.Append("s1", "user", "msg")
		}
		if got := len(m.Recent("s1", 6)); got != 6 {
			t.Errorf("expected 6 entries, got %d", got)
		}
	})

	t.Run("Sessions Isolated", func(t *testing.T) {
		m := NewSessionMemory()
		m.Append("s1", "user", "msg")
		if got := len(m.Recent("s2", 6)); got != 0 {
			t.Errorf("expected empty history for other session, got %d", got)
		}
	})
}
