package routine

import "fmt"

// FormatSeconds renders signed seconds as MM:SS, the sign shown only
// when negative: -65 becomes "-01:05".
func FormatSeconds(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/60, seconds%60)
}
