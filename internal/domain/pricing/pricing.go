package pricing

import (
	"strings"

	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// DefaultGoldPurity is applied when a gold bill does not specify purity
// (75% corresponds to 18K).
var DefaultGoldPurity = decimal.NewFromInt(75)

// legacyFactor is the extra multiplier of the historical gold formula
// (variant B). It is applied to the GST-inclusive total, before discount.
var legacyFactor = decimal.RequireFromString("1.002911")

var (
	ten      = decimal.NewFromInt(10)
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Input holds the raw amounts a sale submission provides. Rate is per 10g
// for gold and per 1000g for silver. Making is a percentage of the base
// value for gold and a flat amount for silver.
type Input struct {
	Metal           enum.Metal
	NetWeight       decimal.Decimal
	OldWeight       decimal.Decimal
	Rate            decimal.Decimal
	Purity          decimal.Decimal // gold only; zero means DefaultGoldPurity
	Making          decimal.Decimal
	ExtraAdjustment decimal.Decimal // percent on top of making
	GSTPercent      decimal.Decimal
	Discount        decimal.Decimal
	Paid            decimal.Decimal
}

// Quote is a fully reconciled bill computation. Total and Balance are the
// only finalized (rounded) figures; the intermediate amounts are carried at
// full precision so downstream consumers never re-derive them.
type Quote struct {
	BillingWeight decimal.Decimal
	MetalAmount   decimal.Decimal
	MakingAmount  decimal.Decimal
	Subtotal      decimal.Decimal
	GSTAmount     decimal.Decimal
	Total         decimal.Decimal
	Balance       decimal.Decimal
	PurityLabel   string
	Clamped       bool // discount exceeded the computed total
}

// Compute prices a sale. All arithmetic stays exact until the total is
// finalized; rounding intermediate figures produces different totals and is
// deliberately avoided. The total is floored at zero, absorbing an oversized
// discount silently. GST is always computed against the undiscounted
// subtotal, never against the discounted total.
func Compute(in Input, policy enum.GSTPolicy) Quote {
	billingWeight := in.NetWeight.Sub(in.OldWeight)

	var q Quote
	q.BillingWeight = billingWeight

	switch in.Metal {
	case enum.MetalSilver:
		q.MetalAmount = in.Rate.Div(thousand).Mul(billingWeight)
		q.MakingAmount = in.Making.Add(q.MetalAmount.Mul(in.ExtraAdjustment).Div(hundred))
		q.PurityLabel = "Silver"
	default:
		purity := in.Purity
		if purity.IsZero() {
			purity = DefaultGoldPurity
		}
		base := in.Rate.Div(ten).Mul(billingWeight)
		q.MetalAmount = base.Mul(purity).Div(hundred)
		q.MakingAmount = base.Mul(in.Making.Add(in.ExtraAdjustment)).Div(hundred)
		q.PurityLabel = "Gold " + purity.String() + "%"
	}

	q.Subtotal = q.MetalAmount.Add(q.MakingAmount)
	q.GSTAmount = q.Subtotal.Mul(in.GSTPercent).Div(hundred)

	beforeDiscount := q.Subtotal.Add(q.GSTAmount)
	if in.Metal == enum.MetalGold && policy == enum.GSTPolicyLegacyFactor {
		beforeDiscount = beforeDiscount.Mul(legacyFactor)
	}

	total := beforeDiscount.Sub(in.Discount)
	if total.IsNegative() {
		total = decimal.Zero
		q.Clamped = true
	}

	q.Total = total.Round(2)
	q.Balance = q.Total.Sub(in.Paid).Round(2)
	return q
}

// MakingFromTotals inverse-solves the making charge from finalized totals.
// It exists only as a cross-check: the engine's MakingAmount is the system
// of record and is carried through rendering verbatim. The identity holds
// under GSTPolicyPlain whenever the zero floor was not hit.
func MakingFromTotals(total, gst, metal, discount decimal.Decimal) decimal.Decimal {
	return total.Sub(gst).Sub(metal).Add(discount)
}

// CaratLabel maps a purity label to the carat marking printed on the
// invoice. Unrecognized labels (including "Silver") pass through unchanged.
func CaratLabel(purityLabel string) string {
	switch {
	case strings.Contains(purityLabel, "75"):
		return "18K"
	case strings.Contains(purityLabel, "84"):
		return "20K"
	case strings.Contains(purityLabel, "92"):
		return "22K"
	}
	return purityLabel
}
