package strutil

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	positionalPlaceholder = regexp.MustCompile(`\{(\d+)\}`)
	namedPlaceholder      = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_.\-]*)\}`)
)

// Format replaces every {N} placeholder in s with the string form of args[N].
// Placeholders without a matching argument are left unchanged, and nil
// arguments render as "null". N is matched as written, so {01} never
// addresses args[1]. Substituted text is not scanned again.
func Format(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}

	return positionalPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		digits := match[1 : len(match)-1]
		if len(digits) > 1 && digits[0] == '0' {
			return match
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n >= len(args) {
			return match
		}
		return stringify(args[n])
	})
}

// FormatMap replaces every {name} placeholder in s with args[name].
// Unknown names are left unchanged. Numeric placeholders are not touched.
func FormatMap(s string, args map[string]any) string {
	if len(args) == 0 {
		return s
	}

	return namedPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		v, ok := args[match[1:len(match)-1]]
		if !ok {
			return match
		}
		return stringify(v)
	})
}

func stringify(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}
