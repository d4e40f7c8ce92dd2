package model

// VisualPayload describes a chart or table the UI can render.
type VisualPayload struct {
	Type  string     `json:"type"` // table, bar, line, scatter
	Title string     `json:"title"`
	Data  VisualData `json:"data"`
	X     string     `json:"x,omitempty"`
	Y     string     `json:"y,omitempty"`
}

// VisualData is a small columnar dataset.
type VisualData struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}
