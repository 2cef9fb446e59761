package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineEncoder writes one tab separated record per token or context:
//
//	line:column	KIND	"text"
//	line	[start,end)	type	"text"
type LineEncoder struct {
	w   io.Writer
	doc *Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	if err := e.doc.check(); err != nil {
		return nil, err
	}
	var sb strings.Builder

	if e.doc.Output == nil {
		for _, tok := range e.doc.Stream.Tokens() {
			fmt.Fprintf(&sb, "%d:%d\t%s\t%s\n",
				tok.Line(),
				tok.Column(),
				tok.Kind,
				strconv.Quote(tok.Literal),
			)
		}
		return []byte(sb.String()), nil
	}

	for _, ctx := range e.doc.Output.Contexts() {
		fmt.Fprintf(&sb, "%d\t[%d,%d)\t%s\t%s\n",
			ctx.LineNumber(),
			ctx.StartOffset(),
			ctx.EndOffset(),
			ctx.Type(),
			strconv.Quote(ctx.Text()),
		)
	}
	return []byte(sb.String()), nil
}
