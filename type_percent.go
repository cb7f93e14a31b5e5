package networth

import "fmt"

// Percent is a ratio expressed in percent: 12.5 is 12.5%.
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

// SignedString always shows the sign, zero being "+0.00%".
func (p Percent) SignedString() string {
	if p > -0.005 && p < 0.005 {
		return "+0.00%"
	}
	return fmt.Sprintf("%+.2f%%", float64(p))
}
