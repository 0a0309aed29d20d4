package picker

import (
	"fmt"
	"strconv"
	"strings"

	"rgbpick/channel"
)

// ParseFraction converts typed text in [0.0, 1.0] to a channel value.
// The product is truncated toward zero after single-precision scaling, so
// "0.5" gives 127 and "0.6" gives 153. NaN, infinities and anything outside
// the closed unit range are rejected.
func ParseFraction(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return 0, false
	}
	f32 := float32(f)
	if !(f32 >= 0 && f32 <= 1) {
		return 0, false
	}
	scaled := float32(f32 * channel.MaxValue)
	return int(scaled), true
}

// FormatFraction renders v as v/255 with three decimals, e.g. "0.498".
func FormatFraction(v int) string {
	return fmt.Sprintf("%.3f", float64(v)/channel.MaxValue)
}
