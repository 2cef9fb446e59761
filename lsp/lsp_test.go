package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

func TestContextRangeUTF16(t *testing.T) {
	// "ü" is two bytes but one UTF-16 unit, "😀" four bytes and two units.
	s := lexer.TokenizeString("x\nGrüße😀  \\n")
	out := classify.BuildContexts(s)

	found := out.OfType(classify.ContextLineFeedText)
	require.Len(t, found, 1)
	assert.Equal(t, 13, found[0].StartOffset())

	r := ContextRange(s, found[0])
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 9},
		End:   protocol.Position{Line: 1, Character: 11},
	}, r)
}

func TestSemanticTokens(t *testing.T) {
	s := lexer.TokenizeString("a  b\n| c |  # note")
	out := classify.BuildContexts(s)

	// a  b        -> separator at 1:1
	// | c |  # note -> pipe 0..2, pipe 3..7, comment 7..13
	sep := legendIndex(classify.ContextDoubleSpaceOrTabulatorSeparated)
	pipe := legendIndex(classify.ContextPipeSeparated)
	comment := legendIndex(classify.ContextDeclaredComment)

	assert.Equal(t, []protocol.UInteger{
		0, 1, 2, sep, 0,
		1, 0, 2, pipe, 0,
		0, 3, 4, pipe, 0,
		0, 4, 6, comment, 0,
	}, SemanticTokens(out))
}

func TestLegend(t *testing.T) {
	legend := Legend()
	for _, typ := range classify.ContextTypes() {
		assert.Equal(t, typ.String(), legend.TokenTypes[legendIndex(typ)])
	}
}

func TestServerDocumentLifecycle(t *testing.T) {
	ls := NewServer("test", nil)
	uri := "file:///tmp/suite.robot"

	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "Log  \\n"},
	}))
	doc := ls.Workspace().Get(uri)
	require.NotNil(t, doc)
	assert.Equal(t, "/tmp/suite.robot", doc.Stream.File())
	assert.Equal(t, 2, doc.Output.Len())

	require.NoError(t, ls.textDocumentDidChange(nil, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "plain"}},
	}))
	assert.Equal(t, int32(2), ls.Workspace().Get(uri).Version)

	tokens, err := ls.textDocumentSemanticTokensFull(nil, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, tokens.Data)

	require.NoError(t, ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Nil(t, ls.Workspace().Get(uri))
	assert.Empty(t, ls.Workspace().URIs())
}

func TestServerInitialize(t *testing.T) {
	ls := NewServer("1.2.3", nil)
	result, err := ls.initialize(nil, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, "robotlex", init.ServerInfo.Name)

	opts, ok := init.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, Legend(), opts.Legend)
}
