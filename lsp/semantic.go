package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

// Legend lists the semantic token types in index order: one per context
// type.
func Legend() protocol.SemanticTokensLegend {
	types := classify.ContextTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return protocol.SemanticTokensLegend{
		TokenTypes:     names,
		TokenModifiers: []string{},
	}
}

func legendIndex(t classify.ContextType) protocol.UInteger {
	return protocol.UInteger(t - classify.ContextEscapedCharacter)
}

// ContextRange maps a context to an LSP range: 0-based line, UTF-16
// character offsets, exclusive end.
func ContextRange(s *lexer.Stream, ctx *classify.Context) protocol.Range {
	line := protocol.UInteger(ctx.LineNumber() - 1)
	text := lineText(s, ctx.LineNumber())
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: utf16Offset(text, ctx.StartOffset())},
		End:   protocol.Position{Line: line, Character: utf16Offset(text, ctx.EndOffset())},
	}
}

// SemanticTokens encodes every context of out in the relative five
// integer form of textDocument/semanticTokens.
func SemanticTokens(out *classify.Output) []protocol.UInteger {
	s := out.Stream()
	data := []protocol.UInteger{}
	var prevLine, prevStart protocol.UInteger

	for _, ctx := range out.Contexts() {
		r := ContextRange(s, ctx)
		deltaLine := r.Start.Line - prevLine
		deltaStart := r.Start.Character
		if deltaLine == 0 {
			deltaStart -= prevStart
		}
		data = append(data,
			deltaLine,
			deltaStart,
			r.End.Character-r.Start.Character,
			legendIndex(ctx.Type()),
			0,
		)
		prevLine, prevStart = r.Start.Line, r.Start.Character
	}
	return data
}

func lineText(s *lexer.Stream, number int) string {
	p, ok := s.Line(number)
	if !ok {
		return ""
	}
	return s.LineText(p)
}

// utf16Offset converts a byte offset within text to UTF-16 code units.
// Invalid bytes count as one unit each.
func utf16Offset(text string, byteOffset int) protocol.UInteger {
	if byteOffset > len(text) {
		byteOffset = len(text)
	}
	units := 0
	for i := 0; i < byteOffset; {
		r, size := utf8.DecodeRuneInString(text[i:])
		if n := utf16.RuneLen(r); n > 0 {
			units += n
		} else {
			units++
		}
		i += size
	}
	return protocol.UInteger(units)
}
