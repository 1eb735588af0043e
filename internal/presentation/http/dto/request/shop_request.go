package request

// UpdateShopRequest represents a shop profile update
type UpdateShopRequest struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
}
