package lsp

import (
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

// Document is an open editor buffer together with its classification.
type Document struct {
	URI     string
	Version int32
	Stream  *lexer.Stream
	Output  *classify.Output
}

// Workspace tracks the open documents. Every update re-tokenizes and
// re-classifies the whole buffer.
type Workspace struct {
	mu      sync.RWMutex
	builder *classify.Builder
	docs    map[string]*Document
}

func NewWorkspace(builder *classify.Builder) *Workspace {
	if builder == nil {
		builder = classify.NewBuilder()
	}
	return &Workspace{
		builder: builder,
		docs:    make(map[string]*Document),
	}
}

func (w *Workspace) Update(uri string, version int32, text string) *Document {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}
	stream := lexer.TokenizeFile([]byte(text), path)
	doc := &Document{
		URI:     uri,
		Version: version,
		Stream:  stream,
		Output:  w.builder.Build(stream),
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[uri] = doc
	return doc
}

func (w *Workspace) Get(uri string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[uri]
}

func (w *Workspace) Close(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, uri)
}

func (w *Workspace) URIs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	uris := make([]string, 0, len(w.docs))
	for uri := range w.docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}
