package highlight

import (
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/inlinediff/mapping"
	"github.com/dshills/inlinediff/observe"
)

// Completion describes one finished tokenization batch.
type Completion struct {
	// Lines are the line numbers tokenized in this batch.
	Lines []int

	// Generation is the provider generation after the batch.
	Generation uint64
}

// cachedLine holds cached tokens for a line.
type cachedLine struct {
	text   string // Original text (for cache validation)
	tokens []Token
}

// Provider tokenizes lines in the background and caches the results.
// TokensForLine never blocks: it returns whatever tokens are currently
// available and schedules tokenization for misses. Each completed batch
// bumps the generation counter and fires the TokensChanged emitter.
type Provider struct {
	mu sync.RWMutex

	// lexer is the chroma lexer for the configured language.
	lexer chroma.Lexer

	// theme is the active color theme.
	theme *Theme

	// lineGetter retrieves line content by 1-based line number.
	lineGetter func(line int) string

	// cache caches tokenized lines.
	cache map[int]*cachedLine

	// maxCacheSize limits the cache size.
	maxCacheSize int

	// generation increases once per completed batch.
	generation uint64

	tokensChanged *observe.Emitter[Completion]

	requests chan int
	done     chan struct{}
	wg       sync.WaitGroup
	closed   bool
}

// Option configures a Provider.
type Option func(*Provider)

// WithMaxCacheSize limits the number of cached lines.
func WithMaxCacheSize(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.maxCacheSize = n
		}
	}
}

// WithTheme sets the color theme.
func WithTheme(theme *Theme) Option {
	return func(p *Provider) {
		if theme != nil {
			p.theme = theme
		}
	}
}

// NewProvider creates a provider for the given language and starts its
// background tokenization worker. An unknown language falls back to
// plain-text lexing. Close must be called to stop the worker.
func NewProvider(language string, opts ...Option) *Provider {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	p := &Provider{
		lexer:         chroma.Coalesce(lexer),
		theme:         DefaultTheme(),
		cache:         make(map[int]*cachedLine),
		maxCacheSize:  1000,
		tokensChanged: observe.NewEmitter[Completion](),
		requests:      make(chan int, 1024),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(1)
	go p.worker()

	return p
}

// SetLineGetter sets the function used to retrieve line content.
func (p *Provider) SetLineGetter(getter func(line int) string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lineGetter = getter
}

// Theme returns the active theme.
func (p *Provider) Theme() *Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// Generation returns the tokenization-completion counter value.
func (p *Provider) Generation() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.generation
}

// TokensChanged returns the emitter fired once per completed batch.
func (p *Provider) TokensChanged() *observe.Emitter[Completion] {
	return p.tokensChanged
}

// TokensForLine returns the cached tokens for a 1-based line, or nil if the
// line has not been tokenized yet. Misses and stale entries are scheduled
// for background tokenization.
func (p *Provider) TokensForLine(line int) []Token {
	p.mu.RLock()
	getter := p.lineGetter
	cached := p.cache[line]
	p.mu.RUnlock()

	if getter == nil {
		return nil
	}
	if cached != nil && cached.text == getter(line) {
		return cached.tokens
	}

	p.request(line)
	return nil
}

// StyleSpansFor returns style spans for the given line-local offset range,
// sliced from the line's token stream. When no tokens are available yet the
// whole range is covered by a single default-style span.
func (p *Provider) StyleSpansFor(line int, offsets mapping.OffsetRange) []StyleSpan {
	if offsets.IsEmpty() {
		return nil
	}
	theme := p.Theme()
	tokens := p.TokensForLine(line)
	if len(tokens) == 0 {
		return []StyleSpan{{Start: offsets.Start, End: offsets.End, Style: theme.Default()}}
	}

	var spans []StyleSpan
	for _, tok := range tokens {
		clip := offsets.Intersect(mapping.OffsetRange{Start: tok.StartCol, End: tok.EndCol})
		if clip.IsEmpty() {
			continue
		}
		spans = append(spans, StyleSpan{Start: clip.Start, End: clip.End, Style: theme.StyleForToken(tok.Type)})
	}
	if len(spans) == 0 {
		return []StyleSpan{{Start: offsets.Start, End: offsets.End, Style: theme.Default()}}
	}
	return spans
}

// Invalidate drops the cached tokens for a line.
func (p *Provider) Invalidate(line int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, line)
}

// InvalidateAll drops every cached line.
func (p *Provider) InvalidateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[int]*cachedLine)
}

// Close stops the background worker. It is safe to call Close multiple times.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.done)
	p.wg.Wait()
}

// request schedules a line for background tokenization. A full queue drops
// the request; the next read of the still-missing line re-schedules it.
func (p *Provider) request(line int) {
	select {
	case p.requests <- line:
	case <-p.done:
	default:
	}
}

// worker drains request batches, tokenizes them, and fires one completion
// per batch.
func (p *Provider) worker() {
	defer p.wg.Done()

	for {
		select {
		case line := <-p.requests:
			batch := []int{line}
		drain:
			for {
				select {
				case l := <-p.requests:
					batch = append(batch, l)
				default:
					break drain
				}
			}
			if lines := p.tokenizeBatch(batch); len(lines) > 0 {
				p.mu.Lock()
				p.generation++
				gen := p.generation
				p.mu.Unlock()
				p.tokensChanged.Fire(Completion{Lines: lines, Generation: gen})
			}
		case <-p.done:
			return
		}
	}
}

// tokenizeBatch tokenizes the given lines, returning those whose cache
// entries changed.
func (p *Provider) tokenizeBatch(batch []int) []int {
	var changed []int
	for _, line := range batch {
		p.mu.RLock()
		getter := p.lineGetter
		cached := p.cache[line]
		p.mu.RUnlock()

		if getter == nil {
			continue
		}
		text := getter(line)
		if cached != nil && cached.text == text {
			continue
		}

		tokens := p.tokenize(text)

		p.mu.Lock()
		if len(p.cache) >= p.maxCacheSize {
			p.cache = make(map[int]*cachedLine)
		}
		p.cache[line] = &cachedLine{text: text, tokens: tokens}
		p.mu.Unlock()

		changed = append(changed, line)
	}
	return changed
}

// tokenize lexes a single line into tokens with rune-column extents.
func (p *Provider) tokenize(text string) []Token {
	it, err := p.lexer.Tokenise(nil, text)
	if err != nil {
		return nil
	}

	var tokens []Token
	col := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		w := utf8.RuneCountInString(tok.Value)
		if w == 0 {
			continue
		}
		tokens = append(tokens, Token{
			Type:     tokenTypeOf(tok.Type),
			StartCol: col,
			EndCol:   col + w,
		})
		col += w
	}
	return tokens
}

// tokenTypeOf maps a chroma token type to our reduced set.
func tokenTypeOf(t chroma.TokenType) TokenType {
	switch {
	case t.InCategory(chroma.Comment):
		return TokenComment
	case t.InSubCategory(chroma.LiteralString):
		return TokenString
	case t.InSubCategory(chroma.LiteralNumber):
		return TokenNumber
	case t.InCategory(chroma.Keyword):
		return TokenKeyword
	case t.InCategory(chroma.Operator):
		return TokenOperator
	case t.InCategory(chroma.Punctuation):
		return TokenPunctuation
	case t == chroma.NameFunction:
		return TokenFunction
	case t == chroma.NameClass:
		return TokenTypeName
	case t.InCategory(chroma.Name):
		return TokenIdentifier
	default:
		return TokenNone
	}
}
