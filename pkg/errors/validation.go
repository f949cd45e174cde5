package errors

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// MaxLabelPrecision bounds the width and precision of a label verb.
const MaxLabelPrecision = 20

// Output formats accepted by [ValidateOutputFormat].
var outputFormats = []string{"svg", "png", "json"}

// ValidateLabelFormat checks that format is a printf template with exactly
// one floating-point verb (e, E, f, F, g or G). Literal text and %% are
// allowed around it; width and precision must be numbers, not '*', of at
// most MaxLabelPrecision.
func ValidateLabelFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidLabelFormat, "label format cannot be empty")
	}
	if len(format) > 64 {
		return New(ErrCodeInvalidLabelFormat, "label format too long (max 64 characters)")
	}

	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		var width, precision int
		width, i = digits(format, i)
		if i < len(format) && format[i] == '.' {
			precision, i = digits(format, i+1)
		}
		if width > MaxLabelPrecision || precision > MaxLabelPrecision {
			return New(ErrCodeInvalidLabelFormat, "label format %q: width and precision are limited to %d", format, MaxLabelPrecision)
		}
		if i >= len(format) {
			return New(ErrCodeInvalidLabelFormat, "label format %q ends inside a verb", format)
		}
		switch format[i] {
		case 'e', 'E', 'f', 'F', 'g', 'G':
			verbs++
		default:
			return New(ErrCodeInvalidLabelFormat, "label format %q uses %%%c; only e, E, f, F, g and G are allowed", format, format[i])
		}
	}
	if verbs != 1 {
		return New(ErrCodeInvalidLabelFormat, "label format %q must contain exactly one value verb, found %d", format, verbs)
	}
	if s := fmt.Sprintf(format, 1.0); strings.Contains(s, "%!") {
		return New(ErrCodeInvalidLabelFormat, "label format %q does not format a number", format)
	}
	return nil
}

// digits reads a decimal number starting at s[i] and returns it with the
// index after it. The value saturates past MaxLabelPrecision.
func digits(s string, i int) (int, int) {
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = min(n*10+int(s[i]-'0'), MaxLabelPrecision+1)
	}
	return n, i
}

// ValidateOutputFormat checks that format names a supported output.
func ValidateOutputFormat(format string) error {
	for _, f := range outputFormats {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported output format %q (want %s)", format, strings.Join(outputFormats, ", "))
}

// ValidateRange checks that both bounds of a data range are finite.
// Equal bounds are allowed; they produce a single-label axis.
func ValidateRange(lo, hi float64) error {
	for _, v := range []float64{lo, hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidRange, "range bound %v is not finite", v)
		}
	}
	return nil
}

// ValidatePath validates an output or config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not end in a path separator
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path %q names a directory, not a file", path)
	}

	return nil
}
