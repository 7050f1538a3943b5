package fsutils

import "strconv"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// GetSizeShortText returns a compact human readable size, e.g. "12KB".
// Values are rounded to the nearest unit; TB is the largest unit used.
func GetSizeShortText(size int64) string {
	const step = 1024
	if size < step {
		return strconv.FormatInt(size, 10) + sizeUnits[0]
	}
	div := int64(step)
	exp := 1
	for size/div >= step && exp < len(sizeUnits)-1 {
		div *= step
		exp++
	}
	rounded := (size + div/2) / div
	if rounded >= step && exp < len(sizeUnits)-1 {
		rounded /= step
		exp++
	}
	return strconv.FormatInt(rounded, 10) + sizeUnits[exp]
}
