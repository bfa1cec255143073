package bmfont

import "errors"
import "fmt"

// Error kinds surfaced by [Parse], [ParseStrict] and the lookup
// helpers. The returned errors wrap these with extra context, so
// match them with [errors.Is] instead of direct comparison.
var (
	ErrBadSignature    = errors.New("missing BMF file identifier")
	ErrTruncated       = errors.New("unexpected end of data")
	ErrInvalidEncoding = errors.New("invalid utf8 string")
	ErrBadBlock        = errors.New("unexpected block header") // strict parsing only
	ErrMissingGlyph    = errors.New("no char for byte value")
	ErrUnknownCharset  = errors.New("charset has no known encoding")
)

func parseErr(kind error, details string) error {
	if details == "" {
		return fmt.Errorf("bmfont parsing error: %w", kind)
	}
	return fmt.Errorf("bmfont parsing error: %w (%s)", kind, details)
}
