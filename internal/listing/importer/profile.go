package importer

// Profile describes the column layout of a listing spreadsheet. Adding a new
// layout is adding an entry to profiles.
type Profile struct {
	Name         string
	TitleCol     string
	CommodityCol string // empty when the commodity is derived from TitleCol
	GradeCol     string // optional, appended to the title
	DescCol      string // optional
	PriceCol     string
	QuantityCol  string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.TitleCol, p.PriceCol, p.QuantityCol}
	if p.CommodityCol != "" {
		cols = append(cols, p.CommodityCol)
	}

	return cols
}

// profiles is tried in order; more specific layouts come first.
var profiles = []Profile{
	{
		Name:         "farmfeed",
		TitleCol:     "title",
		CommodityCol: "commodity",
		DescCol:      "description",
		PriceCol:     "price",
		QuantityCol:  "quantity",
	},
	{
		Name:        "co-op",
		TitleCol:    "product",
		GradeCol:    "grade",
		DescCol:     "remarks",
		PriceCol:    "price (r/t)",
		QuantityCol: "tons",
	},
}
