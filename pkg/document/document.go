package document

// Invoice is the fully computed payload a renderer receives. Every figure,
// including the making charge, arrives pre-computed from the pricing engine;
// a renderer must never re-derive one from the others.
type Invoice struct {
	ShopName    string
	ShopAddress string
	ShopGSTIN   string
	ShopMobile  string

	BillNo      string
	Date        string
	Customer    string
	Mobile      string
	Metal       string
	CaratLabel  string
	NetWeight   float64
	OldWeight   float64
	DisplayRate string

	Items []Item

	GSTAmount    float64
	MakingAmount float64
	Discount     float64
	Total        float64
	Paid         float64
	Balance      float64
}

// Item is one sold line on the invoice.
type Item struct {
	Name   string
	Weight float64
}

// Renderer produces a printable document for a finalized invoice and
// returns the path of the generated file.
type Renderer interface {
	Render(inv *Invoice) (string, error)
}

// --- Null renderer (rendering disabled) ---

type nullRenderer struct{}

// NewNullRenderer creates a renderer that produces nothing. Used when
// document output is disabled or the configured renderer failed to
// initialize; sales proceed without a printable bill.
func NewNullRenderer() Renderer {
	return &nullRenderer{}
}

func (n *nullRenderer) Render(inv *Invoice) (string, error) {
	return "", nil
}
