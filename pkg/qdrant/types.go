package qdrant

// CreateCollectionRequest configures a new collection.
type CreateCollectionRequest struct {
	Name    string        `json:"-"`
	Vectors VectorsConfig `json:"vectors"`
}

// VectorsConfig defines vector size and distance metric.
type VectorsConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"` // "Cosine", "Dot", "Euclid"
}

// Point is a single vector with payload.
type Point struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// UpsertPointsRequest inserts or updates points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is a nearest-neighbor search.
type SearchRequest struct {
	Vector      []float32              `json:"vector"`
	Limit       int                    `json:"limit"`
	WithPayload bool                   `json:"with_payload"`
	Filter      map[string]interface{} `json:"filter,omitempty"`
}

// ScoredPoint is a search hit.
type ScoredPoint struct {
	ID      interface{}            `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// SearchResponse wraps search hits.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// DeletePointsRequest deletes points by ID.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}

type collectionExistsResponse struct {
	Result struct {
		Exists bool `json:"exists"`
	} `json:"result"`
}
