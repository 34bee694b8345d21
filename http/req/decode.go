package req

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/wings"
)

func newParamDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// translateDecoderError converts an error returned by *schema.Decoder into wings sentinel errors.
//
// Values that cannot be converted into their field become ValidationErrors wrapped by ErrBadFormat.
// Fields tagged "required" but missing from the params are ErrMissingData.
// Types the decoder cannot convert into are ErrNotImplemented.
// Anything else is a programming error: ErrBadAny or ErrUnexpected.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		// NOTE: schema returns a bare error when dst is not a pointer to a struct
		return fmt.Errorf("%w: %s", wings.ErrBadAny, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch e := pkgErr.(type) {
		case schema.ConversionError:
			validErrs = append(validErrs, ValidationError{
				Field: e.Key,
				// NOTE: e.Index is -1 for non-slice values
				Got:  fmt.Sprintf("bad value at index %d", max(0, e.Index)),
				Rule: "must be " + e.Type.String(),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf("%w: %s", wings.ErrMissingData, e.Key)

		case schema.UnknownKeyError:
			validErrs = append(validErrs, ValidationError{
				Field: e.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			// NOTE: a field with no registered converter only errors
			// once params carry a value for it
			if strings.Contains(e.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", wings.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", wings.ErrUnexpected, e)
		}
	}

	return fmt.Errorf("%w: %w", wings.ErrBadFormat, validErrs)
}
