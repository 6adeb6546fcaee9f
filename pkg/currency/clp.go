package currency

import "strconv"

// CLP formats an amount of whole Chilean pesos for display, with the
// es-CL thousands separator: 1190 -> "$1.190".
func CLP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3+2)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	s := "$" + string(out)
	if neg {
		s = "-" + s
	}
	return s
}
