package gst

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Slab describes one Indian GST rate band.
type Slab struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
	Hsn         string  `json:"hsn"`
}

// Slabs returns the standard Indian GST rate bands.
func Slabs() []Slab {
	return []Slab{
		{ID: 1, Category: "Essential Goods", Rate: 0, Description: "Food grains, fresh fruits & vegetables", Hsn: "Various"},
		{ID: 2, Category: "Basic Necessities", Rate: 5, Description: "Packaged food items, sugar, tea, coffee", Hsn: "0902, 1701"},
		{ID: 3, Category: "Standard Rate", Rate: 12, Description: "Processed food, computers, mobiles", Hsn: "8471, 8517"},
		{ID: 4, Category: "Standard Rate", Rate: 18, Description: "Electronics, chemicals, machinery", Hsn: "8528, 8504"},
		{ID: 5, Category: "Luxury Items", Rate: 28, Description: "Luxury cars, tobacco products", Hsn: "8703, 2402"},
	}
}

// Breakdown is a GST split for one taxable amount. Intra-state tax divides
// evenly between CGST and SGST; inter-state tax goes wholly to IGST.
type Breakdown struct {
	TaxableAmount  float64 `json:"taxableAmount"`
	GstRate        float64 `json:"gstRate"`
	InterState     bool    `json:"interState"`
	Cgst           float64 `json:"cgst"`
	Sgst           float64 `json:"sgst"`
	Igst           float64 `json:"igst"`
	TotalTax       float64 `json:"totalTax"`
	Total          float64 `json:"total"`
	FormattedTax   string  `json:"formattedTax"`
	FormattedTotal string  `json:"formattedTotal"`
}

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount in Indian digit grouping with two decimals.
func FormatINR(amount float64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount,
		number.MaxFractionDigits(2), number.MinFractionDigits(2)))
}

// Calculate splits GST on a taxable amount.
func Calculate(amount, rate float64, interState bool) Breakdown {
	tax := amount * rate / 100
	b := Breakdown{
		TaxableAmount: amount,
		GstRate:       rate,
		InterState:    interState,
		TotalTax:      tax,
		Total:         amount + tax,
	}
	if interState {
		b.Igst = tax
	} else {
		b.Cgst = tax / 2
		b.Sgst = tax / 2
	}
	b.FormattedTax = FormatINR(b.TotalTax)
	b.FormattedTotal = FormatINR(b.Total)
	return b
}
