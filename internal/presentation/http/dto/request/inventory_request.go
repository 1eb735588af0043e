package request

// RestockRequest represents a stock addition
type RestockRequest struct {
	Metal  string  `json:"metal"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}
