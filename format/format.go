package format

import (
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

// Document is one classified input. Without an Output the encoders write
// the tokens, otherwise the contexts.
type Document struct {
	Stream *lexer.Stream
	Output *classify.Output
}

// ErrNoDocument is returned when an encoder has no document with a token
// stream to write.
var ErrNoDocument = errors.New("no document to encode")

func (d *Document) check() error {
	if d == nil || d.Stream == nil {
		return ErrNoDocument
	}
	return nil
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *Document) error
}

// ByName returns the encoder registered under name: "json" or "line".
func ByName(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "line", "":
		return NewLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}
