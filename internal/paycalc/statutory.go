package paycalc

import "github.com/shopspring/decimal"

// Statutory contribution and withholding-tax schedules. All rates, caps and
// bracket boundaries live here as named values so a jurisdiction change only
// touches this file.

var (
	sssRate = decimal.RequireFromString("0.05")
	sssCap  = decimal.RequireFromString("1350")

	philHealthRate = decimal.RequireFromString("0.025")
	philHealthCap  = decimal.RequireFromString("2500")

	pagIbigRate         = decimal.RequireFromString("0.02")
	pagIbigLowBaseLimit = decimal.RequireFromString("5000")
	pagIbigLowCap       = decimal.RequireFromString("100")
	pagIbigHighCap      = decimal.RequireFromString("200")

	// MinimumWageDaily is the daily-rate threshold below which an earner is
	// fully exempt from withholding tax.
	MinimumWageDaily = decimal.RequireFromString("685")
)

// Monthly withholding-tax brackets. taxExemptCeiling is exclusive: taxable
// income at or below it owes nothing.
var (
	taxExemptCeiling = decimal.RequireFromString("20833")

	taxTier2Rate = decimal.RequireFromString("0.20")

	taxTier3Floor = decimal.RequireFromString("33333")
	taxTier3Base  = decimal.RequireFromString("2500")
	taxTier3Rate  = decimal.RequireFromString("0.25")

	taxTier4Floor = decimal.RequireFromString("66667")
	taxTier4Base  = decimal.RequireFromString("10833.33")
	taxTier4Rate  = decimal.RequireFromString("0.30")

	taxTier5Floor = decimal.RequireFromString("166667")
	taxTier5Base  = decimal.RequireFromString("40833.33")
	taxTier5Rate  = decimal.RequireFromString("0.32")

	taxTier6Floor = decimal.RequireFromString("666667")
	taxTier6Base  = decimal.RequireFromString("200833.33")
	taxTier6Rate  = decimal.RequireFromString("0.35")
)

// SSS returns the social-security contribution on the given base, capped.
func SSS(base decimal.Decimal) decimal.Decimal {
	return decimal.Min(base.Mul(sssRate), sssCap).Round(2)
}

// PhilHealth returns the health-insurance contribution on the given base, capped.
func PhilHealth(base decimal.Decimal) decimal.Decimal {
	return decimal.Min(base.Mul(philHealthRate), philHealthCap).Round(2)
}

// PagIbig returns the housing-fund contribution on the given base. The cap
// steps up once the base exceeds the low-base limit.
func PagIbig(base decimal.Decimal) decimal.Decimal {
	cap := pagIbigHighCap
	if base.LessThanOrEqual(pagIbigLowBaseLimit) {
		cap = pagIbigLowCap
	}
	return decimal.Min(base.Mul(pagIbigRate), cap).Round(2)
}

// WithholdingTax computes the progressive monthly withholding tax on the
// taxable salary. Minimum-wage earners are fully exempt.
func WithholdingTax(taxable decimal.Decimal, isBelowMinimum bool) decimal.Decimal {
	if isBelowMinimum {
		return decimal.Zero
	}

	var tax decimal.Decimal
	switch {
	case taxable.GreaterThanOrEqual(taxTier6Floor):
		tax = taxTier6Base.Add(taxable.Sub(taxTier6Floor).Mul(taxTier6Rate))
	case taxable.GreaterThanOrEqual(taxTier5Floor):
		tax = taxTier5Base.Add(taxable.Sub(taxTier5Floor).Mul(taxTier5Rate))
	case taxable.GreaterThanOrEqual(taxTier4Floor):
		tax = taxTier4Base.Add(taxable.Sub(taxTier4Floor).Mul(taxTier4Rate))
	case taxable.GreaterThanOrEqual(taxTier3Floor):
		tax = taxTier3Base.Add(taxable.Sub(taxTier3Floor).Mul(taxTier3Rate))
	case taxable.GreaterThan(taxExemptCeiling):
		tax = taxable.Sub(taxExemptCeiling).Mul(taxTier2Rate)
	default:
		return decimal.Zero
	}
	return tax.Round(2)
}

// IsBelowMinimumWage reports whether the daily rate qualifies for the
// minimum-wage exemption. Earning exactly the statutory minimum still
// qualifies.
func IsBelowMinimumWage(dailyRate decimal.Decimal) bool {
	return dailyRate.LessThanOrEqual(MinimumWageDaily)
}
