package papertrade

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// PercentChange returns the relative change from old to new in percent.
// A zero old value yields 0 to keep a fresh quote board finite.
func PercentChange(old, new Money) Percent {
	if old.IsZero() {
		return 0
	}
	return Percent(new.Sub(old).AsFloat() / old.AsFloat() * 100)
}
