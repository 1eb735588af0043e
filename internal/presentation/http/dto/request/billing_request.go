package request

// SaleItem is one purchased line in a bill submission
type SaleItem struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// CreateBillRequest represents a sale submission. Field-level checks live in
// the billing service so all problems come back in a single response.
type CreateBillRequest struct {
	Customer        string     `json:"customer"`
	Mobile          string     `json:"mobile"`
	Metal           string     `json:"metal"`
	NetWeight       float64    `json:"net_weight"`
	OldWeight       float64    `json:"old_weight"`
	Rate            float64    `json:"rate"`
	DisplayRate     string     `json:"display_rate"`
	Purity          float64    `json:"purity"`
	Making          float64    `json:"making"`
	ExtraAdjustment float64    `json:"extra_adjustment"`
	GSTPercent      float64    `json:"gst_percent"`
	Discount        float64    `json:"discount"`
	Paid            float64    `json:"paid"`
	Items           []SaleItem `json:"items"`
}
