package projection

type Badge struct {
	Count int `json:"count"`
}

type TableRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// CartTable is the itemized cart page. When the cart is empty the
// placeholder is visible and the table is hidden.
type CartTable struct {
	PlaceholderVisible bool       `json:"placeholder_visible"`
	TableVisible       bool       `json:"table_visible"`
	Rows               []TableRow `json:"rows"`
	Total              string     `json:"total"`
}

type SummaryLine struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Label     string `json:"label"`
	LineTotal string `json:"line_total"`
}

type CheckoutSummary struct {
	PlaceholderVisible bool          `json:"placeholder_visible"`
	Lines              []SummaryLine `json:"lines"`
	Total              string        `json:"total"`
	SubmitDisabled     bool          `json:"submit_disabled"`
}

// Views bundles every projection of one snapshot.
type Views struct {
	Badge   Badge           `json:"badge"`
	Table   CartTable       `json:"table"`
	Summary CheckoutSummary `json:"summary"`
}
