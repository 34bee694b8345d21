package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/wings"
)

// A Parser decodes and validates request payloads.
// A Parser is safe for concurrent use.
type Parser struct {
	dec *schema.Decoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		dec:       newParamDecoder(),
		validator: newValidator(),
	}
}

// ParseBody decodes the JSON in body into structPtr, then validates it.
//
// ParseBody reads all of body.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	if body == nil {
		return fmt.Errorf("%w: nil body", wings.ErrBadAny)
	}

	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("%w: ParseBody called with non-pointer: %s", wings.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("%w: failed decoding body: %s", wings.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseParams decodes params into structPtr, then validates it.
func (p *Parser) ParseParams(params url.Values, structPtr any) error {
	if err := p.dec.Decode(structPtr, params); err != nil {
		return fmt.Errorf("failed decoding params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}
