package wings

import "net/url"

const LogMaskVal = "xxxxxx"

// Mask replaces every value under key in vals with a single LogMaskVal,
// hiding sensitive data before it reaches a log.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}
