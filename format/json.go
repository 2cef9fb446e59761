package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

type JSONEncoder struct {
	w   io.Writer
	doc *Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if err := e.doc.check(); err != nil {
		return nil, err
	}
	if e.doc.Output == nil {
		return json.MarshalIndent(e.buildTokensData(), "", "  ")
	}
	return json.MarshalIndent(e.buildContextsData(), "", "  ")
}

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonToken struct {
	Kind string   `json:"kind"`
	Text string   `json:"text"`
	Span jsonSpan `json:"span"`
}

type jsonTokens struct {
	File   string      `json:"file,omitempty"`
	Tokens []jsonToken `json:"tokens"`
}

type jsonContext struct {
	Type        string      `json:"type"`
	Line        int         `json:"line"`
	StartOffset int         `json:"startOffset"`
	EndOffset   int         `json:"endOffset"`
	Text        string      `json:"text"`
	Tokens      []jsonToken `json:"tokens"`
}

type jsonContexts struct {
	File     string        `json:"file,omitempty"`
	Contexts []jsonContext `json:"contexts"`
}

func (e *JSONEncoder) buildTokensData() jsonTokens {
	data := jsonTokens{File: e.doc.Stream.File(), Tokens: []jsonToken{}}
	for _, tok := range e.doc.Stream.Tokens() {
		data.Tokens = append(data.Tokens, tokenToJSON(tok))
	}
	return data
}

func (e *JSONEncoder) buildContextsData() jsonContexts {
	data := jsonContexts{File: e.doc.Stream.File(), Contexts: []jsonContext{}}
	for _, ctx := range e.doc.Output.Contexts() {
		data.Contexts = append(data.Contexts, contextToJSON(ctx))
	}
	return data
}

func contextToJSON(ctx *classify.Context) jsonContext {
	jc := jsonContext{
		Type:        ctx.Type().String(),
		Line:        ctx.LineNumber(),
		StartOffset: ctx.StartOffset(),
		EndOffset:   ctx.EndOffset(),
		Text:        ctx.Text(),
	}
	for _, tok := range ctx.Tokens() {
		jc.Tokens = append(jc.Tokens, tokenToJSON(tok))
	}
	return jc
}

func tokenToJSON(tok lexer.Token) jsonToken {
	return jsonToken{
		Kind: tok.Kind.String(),
		Text: tok.Literal,
		Span: jsonSpan{
			Start: positionToJSON(tok.Span.Start),
			End:   positionToJSON(tok.Span.End),
		},
	}
}

func positionToJSON(p lexer.Position) jsonPosition {
	return jsonPosition{Offset: p.Offset, Line: p.Line, Column: p.Column}
}
