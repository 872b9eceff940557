// Package highlighter turns buffer text into coloured spans per line.
// Go sources are parsed with tree-sitter; every other extension is
// tokenised with a chroma lexer. Colours always come from the chroma style
// of the selected syntax theme.
package highlighter

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"

	"github.com/bethropolis/multitab/internal/highlighter/lang"
	"github.com/bethropolis/multitab/internal/logger"
	"github.com/bethropolis/multitab/internal/theme"
	"github.com/bethropolis/multitab/internal/utils"
)

//go:embed queries/*/*.scm
var embeddedQueries embed.FS

// Span colours the rune columns [StartCol, EndCol) of one line.
type Span struct {
	StartCol int
	EndCol   int
	Fg       tcell.Color
	Attrs    tcell.AttrMask
}

// Apply paints the span onto base, keeping base's background.
func (s Span) Apply(base tcell.Style) tcell.Style {
	style := base.Attributes(s.Attrs)
	if s.Fg != tcell.ColorDefault {
		style = style.Foreground(s.Fg)
	}
	return style
}

// Result maps line number to its spans. Later spans win where they overlap.
type Result map[int][]Span

type cacheEntry struct {
	version uint64
	ext     string
	theme   theme.SyntaxTheme
	result  Result
}

// Highlighter is safe for concurrent use.
type Highlighter struct {
	mu        sync.Mutex
	parser    *sitter.Parser
	languages *lang.Registry
	queries   map[string]*sitter.Query // by language name, nil when the query failed
	cache     map[string]cacheEntry
}

// New creates a highlighter with the built-in tree-sitter languages registered.
func New() *Highlighter {
	h := &Highlighter{
		parser:    sitter.NewParser(),
		languages: lang.NewRegistry(),
		queries:   make(map[string]*sitter.Query),
		cache:     make(map[string]cacheEntry),
	}
	h.languages.Register(&lang.Language{
		Name:           "Go",
		TreeSitterLang: gosrc.GetLanguage(),
		Extensions:     []string{"go"},
		QueryPath:      "go",
	})
	return h
}

// Highlight returns the spans of the document identified by key. Results are
// cached per key until version, ext or th changes; src is only called on a miss.
func (h *Highlighter) Highlight(key string, version uint64, ext string, th theme.SyntaxTheme, src func() []byte) Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e, ok := h.cache[key]; ok && e.version == version && e.ext == ext && e.theme == th {
		return e.result
	}
	result := h.highlightLocked(src(), ext, th)
	h.cache[key] = cacheEntry{version: version, ext: ext, theme: th, result: result}
	return result
}

// Forget drops the cached result for key.
func (h *Highlighter) Forget(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.cache, key)
}

// HighlightText highlights text without caching.
func (h *Highlighter) HighlightText(text []byte, ext string, th theme.SyntaxTheme) Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.highlightLocked(text, ext, th)
}

func (h *Highlighter) highlightLocked(text []byte, ext string, th theme.SyntaxTheme) Result {
	style := styles.Get(th.ChromaStyle())

	if l := h.languages.ForExtension(ext); l != nil {
		result, err := h.treeSitter(text, l, style)
		if err == nil {
			return result
		}
		logger.Warnf("Highlighter: tree-sitter %s failed, using chroma: %v", l.Name, err)
	}
	return chromaHighlight(text, ext, style)
}

func (h *Highlighter) query(l *lang.Language) (*sitter.Query, error) {
	if q, ok := h.queries[l.Name]; ok {
		if q == nil {
			return nil, fmt.Errorf("query for %s unavailable", l.Name)
		}
		return q, nil
	}
	pattern, err := l.Query(embeddedQueries)
	if err == nil {
		var q *sitter.Query
		q, err = sitter.NewQuery(pattern, l.TreeSitterLang)
		if err == nil {
			h.queries[l.Name] = q
			return q, nil
		}
	}
	h.queries[l.Name] = nil
	return nil, fmt.Errorf("query parse failed: %w", err)
}

// treeSitter parses the whole text and maps query captures to chroma token colours.
func (h *Highlighter) treeSitter(text []byte, l *lang.Language, style *chroma.Style) (Result, error) {
	q, err := h.query(l)
	if err != nil {
		return nil, err
	}

	h.parser.SetLanguage(l.TreeSitterLang)
	tree, err := h.parser.ParseCtx(context.Background(), nil, text)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	lines := splitLines(text)
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, tree.RootNode())

	result := make(Result)
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			tok := captureToken(q.CaptureNameForId(capture.Index))
			if plain(tok) {
				continue
			}
			fg, attrs, ok := entryColours(style.Get(tok))
			if !ok {
				continue
			}
			start, end := capture.Node.StartPoint(), capture.Node.EndPoint()
			addRange(result, lines, int(start.Row), int(start.Column), int(end.Row), int(end.Column), fg, attrs)
		}
	}

	logger.DebugTagf("highlight", "tree-sitter %s: highlights on %d lines", l.Name, len(result))
	return result, nil
}

// addRange records a byte range that may span lines as one span per line.
func addRange(result Result, lines [][]byte, startRow, startByte, endRow, endByte int, fg tcell.Color, attrs tcell.AttrMask) {
	for row := startRow; row <= endRow && row < len(lines); row++ {
		line := lines[row]
		from, to := 0, len(line)
		if row == startRow {
			from = startByte
		}
		if row == endRow {
			to = endByte
		}
		startCol := utils.ByteOffsetToRuneIndex(line, from)
		endCol := utils.ByteOffsetToRuneIndex(line, to)
		if endCol <= startCol {
			continue
		}
		result[row] = append(result[row], Span{StartCol: startCol, EndCol: endCol, Fg: fg, Attrs: attrs})
	}
}

// chromaHighlight tokenises text with the lexer registered for ext.
func chromaHighlight(text []byte, ext string, style *chroma.Style) Result {
	result := make(Result)
	lexer := lexers.Match("file." + ext)
	if ext == "" || lexer == nil {
		return result
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, string(text))
	if err != nil {
		logger.Warnf("Highlighter: chroma tokenise failed for .%s: %v", ext, err)
		return result
	}

	line, col := 0, 0
	for token := iterator(); token != chroma.EOF; token = iterator() {
		fg, attrs, styled := entryColours(style.Get(token.Type))
		styled = styled && !plain(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				line++
				col = 0
			}
			n := utf8.RuneCountInString(part)
			if n > 0 && styled {
				result[line] = append(result[line], Span{StartCol: col, EndCol: col + n, Fg: fg, Attrs: attrs})
			}
			col += n
		}
	}
	return result
}

// entryColours converts a chroma style entry; ok is false when it carries nothing to paint.
func entryColours(entry chroma.StyleEntry) (tcell.Color, tcell.AttrMask, bool) {
	fg := tcell.ColorDefault
	if entry.Colour.IsSet() {
		fg = tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue()))
	}
	var attrs tcell.AttrMask
	if entry.Bold == chroma.Yes {
		attrs |= tcell.AttrBold
	}
	if entry.Italic == chroma.Yes {
		attrs |= tcell.AttrItalic
	}
	if entry.Underline == chroma.Yes {
		attrs |= tcell.AttrUnderline
	}
	return fg, attrs, fg != tcell.ColorDefault || attrs != 0
}

// plain tokens keep the UI theme's text colour.
func plain(t chroma.TokenType) bool {
	return t.InCategory(chroma.Text) || t == chroma.Name || t == chroma.Punctuation || t == chroma.Operator
}

var captureTokens = map[string]chroma.TokenType{
	"comment":          chroma.Comment,
	"string":           chroma.LiteralString,
	"string.special":   chroma.LiteralStringChar,
	"string.escape":    chroma.LiteralStringEscape,
	"number":           chroma.LiteralNumber,
	"constant":         chroma.NameConstant,
	"constant.builtin": chroma.KeywordConstant,
	"type":             chroma.KeywordType,
	"namespace":        chroma.NameNamespace,
	"property":         chroma.NameProperty,
	"function":         chroma.NameFunction,
	"keyword":          chroma.Keyword,
}

// captureToken maps a capture name to a token type, dropping trailing
// dotted parts until a known name is found ("function.method.call" -> "function").
func captureToken(name string) chroma.TokenType {
	name = strings.TrimPrefix(name, "@")
	for {
		if t, ok := captureTokens[name]; ok {
			return t
		}
		dot := strings.LastIndex(name, ".")
		if dot == -1 {
			return chroma.Text
		}
		name = name[:dot]
	}
}

func splitLines(text []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range text {
		if b == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
