package pricing

import (
	"testing"

	"github.com/kaushal774/jewelbill-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute_Gold(t *testing.T) {
	tests := []struct {
		name        string
		in          Input
		policy      enum.GSTPolicy
		wantMetal   string
		wantMaking  string
		wantGST     string
		wantTotal   string
		wantBalance string
		wantLabel   string
		wantClamped bool
	}{
		{
			name: "reference sale 10g at 6000",
			in: Input{
				Metal:      enum.MetalGold,
				NetWeight:  d("10"),
				OldWeight:  d("0"),
				Rate:       d("6000"),
				Purity:     d("75"),
				Making:     d("10"),
				GSTPercent: d("3"),
				Paid:       d("5000"),
			},
			policy:      enum.GSTPolicyPlain,
			wantMetal:   "4500",
			wantMaking:  "600",
			wantGST:     "153",
			wantTotal:   "5253",
			wantBalance: "253",
			wantLabel:   "Gold 75%",
		},
		{
			name: "legacy factor layered on GST-inclusive total",
			in: Input{
				Metal:      enum.MetalGold,
				NetWeight:  d("10"),
				OldWeight:  d("0"),
				Rate:       d("6000"),
				Purity:     d("75"),
				Making:     d("10"),
				GSTPercent: d("3"),
				Paid:       d("5000"),
			},
			policy:      enum.GSTPolicyLegacyFactor,
			wantMetal:   "4500",
			wantMaking:  "600",
			wantGST:     "153",
			wantTotal:   "5268.29",
			wantBalance: "268.29",
			wantLabel:   "Gold 75%",
		},
		{
			name: "old weight reduces billing weight",
			in: Input{
				Metal:      enum.MetalGold,
				NetWeight:  d("10"),
				OldWeight:  d("4"),
				Rate:       d("6000"),
				Purity:     d("75"),
				Making:     d("10"),
				GSTPercent: d("3"),
			},
			policy:      enum.GSTPolicyPlain,
			wantMetal:   "2700",
			wantMaking:  "360",
			wantGST:     "91.8",
			wantTotal:   "3151.8",
			wantBalance: "3151.8",
			wantLabel:   "Gold 75%",
		},
		{
			name: "unset purity defaults to 75",
			in: Input{
				Metal:      enum.MetalGold,
				NetWeight:  d("10"),
				Rate:       d("6000"),
				Making:     d("10"),
				GSTPercent: d("3"),
			},
			policy:    enum.GSTPolicyPlain,
			wantMetal: "4500", wantMaking: "600", wantGST: "153",
			wantTotal: "5253", wantBalance: "5253",
			wantLabel: "Gold 75%",
		},
		{
			name: "extra adjustment stacks on making percent",
			in: Input{
				Metal:           enum.MetalGold,
				NetWeight:       d("10"),
				Rate:            d("6000"),
				Purity:          d("75"),
				Making:          d("10"),
				ExtraAdjustment: d("2"),
				GSTPercent:      d("3"),
			},
			policy:    enum.GSTPolicyPlain,
			wantMetal: "4500", wantMaking: "720", wantGST: "156.6",
			wantTotal: "5376.6", wantBalance: "5376.6",
			wantLabel: "Gold 75%",
		},
		{
			name: "oversized discount clamps to zero",
			in: Input{
				Metal:      enum.MetalGold,
				NetWeight:  d("1"),
				Rate:       d("6000"),
				Purity:     d("75"),
				Making:     d("10"),
				GSTPercent: d("3"),
				Discount:   d("100000"),
				Paid:       d("100"),
			},
			policy:    enum.GSTPolicyPlain,
			wantMetal: "450", wantMaking: "60", wantGST: "15.3",
			wantTotal: "0", wantBalance: "-100",
			wantLabel:   "Gold 75%",
			wantClamped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Compute(tt.in, tt.policy)

			assert.True(t, q.MetalAmount.Equal(d(tt.wantMetal)), "metal = %s", q.MetalAmount)
			assert.True(t, q.MakingAmount.Equal(d(tt.wantMaking)), "making = %s", q.MakingAmount)
			assert.True(t, q.GSTAmount.Equal(d(tt.wantGST)), "gst = %s", q.GSTAmount)
			assert.True(t, q.Total.Equal(d(tt.wantTotal)), "total = %s", q.Total)
			assert.True(t, q.Balance.Equal(d(tt.wantBalance)), "balance = %s", q.Balance)
			assert.Equal(t, tt.wantLabel, q.PurityLabel)
			assert.Equal(t, tt.wantClamped, q.Clamped)
		})
	}
}

func TestCompute_Silver(t *testing.T) {
	q := Compute(Input{
		Metal:      enum.MetalSilver,
		NetWeight:  d("100"),
		OldWeight:  d("0"),
		Rate:       d("800"),
		Making:     d("50"), // flat for silver
		GSTPercent: d("3"),
	}, enum.GSTPolicyPlain)

	assert.True(t, q.MetalAmount.Equal(d("80")), "metal = %s", q.MetalAmount)
	assert.True(t, q.MakingAmount.Equal(d("50")), "making = %s", q.MakingAmount)
	assert.True(t, q.GSTAmount.Equal(d("3.9")), "gst = %s", q.GSTAmount)
	assert.True(t, q.Total.Equal(d("133.9")), "total = %s", q.Total)
	assert.True(t, q.Balance.Equal(d("133.9")), "balance = %s", q.Balance)
	assert.Equal(t, "Silver", q.PurityLabel)
}

func TestCompute_SilverExtraAdjustment(t *testing.T) {
	// making = flat 50 + 80 * 10% = 58
	q := Compute(Input{
		Metal:           enum.MetalSilver,
		NetWeight:       d("100"),
		Rate:            d("800"),
		Making:          d("50"),
		ExtraAdjustment: d("10"),
		GSTPercent:      d("3"),
	}, enum.GSTPolicyPlain)

	assert.True(t, q.MakingAmount.Equal(d("58")), "making = %s", q.MakingAmount)
	assert.True(t, q.Total.Equal(d("142.14")), "total = %s", q.Total)
}

func TestCompute_LegacyFactorIgnoredForSilver(t *testing.T) {
	in := Input{
		Metal:      enum.MetalSilver,
		NetWeight:  d("100"),
		Rate:       d("800"),
		Making:     d("50"),
		GSTPercent: d("3"),
	}
	plain := Compute(in, enum.GSTPolicyPlain)
	legacy := Compute(in, enum.GSTPolicyLegacyFactor)
	assert.True(t, plain.Total.Equal(legacy.Total))
}

func TestCompute_BalanceCanBeNegative(t *testing.T) {
	q := Compute(Input{
		Metal:      enum.MetalSilver,
		NetWeight:  d("100"),
		Rate:       d("800"),
		Making:     d("50"),
		GSTPercent: d("3"),
		Paid:       d("200"),
	}, enum.GSTPolicyPlain)

	assert.True(t, q.Balance.Equal(d("-66.1")), "balance = %s", q.Balance)
}

func TestCompute_RoundingOnlyAtFinalization(t *testing.T) {
	// 3.333g at 6001/10g with 7% GST produces a long fraction; the rounded
	// total must equal round2(metal + making + gst - discount) computed
	// without any intermediate rounding.
	in := Input{
		Metal:      enum.MetalGold,
		NetWeight:  d("3.333"),
		Rate:       d("6001"),
		Purity:     d("91.6"),
		Making:     d("12.5"),
		GSTPercent: d("7"),
		Discount:   d("11.11"),
	}
	q := Compute(in, enum.GSTPolicyPlain)

	want := q.MetalAmount.Add(q.MakingAmount).Add(q.GSTAmount).Sub(d("11.11")).Round(2)
	require.True(t, q.Total.Equal(want), "total = %s, want %s", q.Total, want)
}

func TestMakingFromTotals_MatchesEngine(t *testing.T) {
	// Regression for the render-time drift risk: the inverse-solved making
	// charge must agree with the engine's figure within rounding tolerance.
	inputs := []Input{
		{Metal: enum.MetalGold, NetWeight: d("10"), Rate: d("6000"), Purity: d("75"), Making: d("10"), GSTPercent: d("3")},
		{Metal: enum.MetalGold, NetWeight: d("7.77"), OldWeight: d("1.2"), Rate: d("6325"), Purity: d("91.6"), Making: d("14"), ExtraAdjustment: d("1.5"), GSTPercent: d("3"), Discount: d("250")},
		{Metal: enum.MetalSilver, NetWeight: d("100"), Rate: d("800"), Making: d("50"), GSTPercent: d("3")},
		{Metal: enum.MetalSilver, NetWeight: d("412.5"), OldWeight: d("12.5"), Rate: d("817"), Making: d("75"), ExtraAdjustment: d("5"), GSTPercent: d("3"), Discount: d("40")},
	}

	tolerance := d("0.01")
	for _, in := range inputs {
		q := Compute(in, enum.GSTPolicyPlain)
		require.False(t, q.Clamped)

		derived := MakingFromTotals(q.Total, q.GSTAmount, q.MetalAmount, in.Discount)
		diff := derived.Sub(q.MakingAmount).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"derived making %s drifted from engine making %s", derived, q.MakingAmount)
	}
}

func TestCaratLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Gold 75%", "18K"},
		{"Gold 84%", "20K"},
		{"Gold 92%", "22K"},
		{"Gold 99.9%", "Gold 99.9%"},
		{"Silver", "Silver"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CaratLabel(tt.label))
	}
}
