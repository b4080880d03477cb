package highlight

import (
	"testing"
	"time"

	"github.com/dshills/inlinediff/mapping"
	"github.com/dshills/inlinediff/style"
)

func TestTokenContains(t *testing.T) {
	tok := Token{Type: TokenKeyword, StartCol: 3, EndCol: 7}

	if got := tok.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	if !tok.Contains(3) || !tok.Contains(6) {
		t.Error("Contains() = false for in-range column, want true")
	}
	if tok.Contains(7) || tok.Contains(2) {
		t.Error("Contains() = true for out-of-range column, want false")
	}
}

func TestThemeStyleForToken(t *testing.T) {
	def := style.New(style.ColorFromRGB(1, 1, 1))
	th := NewTheme(def)
	kw := style.New(style.ColorFromRGB(2, 2, 2))
	th.Set(TokenKeyword, kw)

	if got := th.StyleForToken(TokenKeyword); got != kw {
		t.Errorf("StyleForToken(TokenKeyword) = %v, want keyword style", got)
	}
	if got := th.StyleForToken(TokenNumber); got != def {
		t.Errorf("StyleForToken(TokenNumber) = %v, want default style", got)
	}
	if got := th.Default(); got != def {
		t.Errorf("Default() = %v, want %v", got, def)
	}
}

// waitForBatch subscribes to completions, runs trigger, and blocks until the
// provider fires a batch or the timeout elapses.
func waitForBatch(t *testing.T, p *Provider, trigger func()) Completion {
	t.Helper()

	ch := make(chan Completion, 1)
	sub := p.TokensChanged().Subscribe(func(c Completion) {
		select {
		case ch <- c:
		default:
		}
	})
	defer sub.Unsubscribe()

	trigger()

	select {
	case c := <-ch:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tokenization batch")
		return Completion{}
	}
}

func TestProviderTokenizesInBackground(t *testing.T) {
	p := NewProvider("go")
	defer p.Close()

	lines := map[int]string{1: "func main() {"}
	p.SetLineGetter(func(n int) string { return lines[n] })

	ch := make(chan Completion, 1)
	sub := p.TokensChanged().Subscribe(func(c Completion) {
		select {
		case ch <- c:
		default:
		}
	})
	defer sub.Unsubscribe()

	// First read is a miss that schedules background work.
	if got := p.TokensForLine(1); got != nil {
		t.Errorf("TokensForLine(1) = %v before tokenization, want nil", got)
	}

	select {
	case c := <-ch:
		if c.Generation == 0 {
			t.Errorf("Completion.Generation = 0, want > 0")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tokenization batch")
	}

	tokens := p.TokensForLine(1)
	if len(tokens) == 0 {
		t.Fatal("TokensForLine(1) = empty after completion, want tokens")
	}
	if tokens[0].Type != TokenKeyword {
		t.Errorf("tokens[0].Type = %v, want keyword", tokens[0].Type)
	}

	// Tokens cover the line contiguously from column 0.
	col := 0
	for _, tok := range tokens {
		if tok.StartCol != col {
			t.Errorf("token starts at %d, want %d (contiguous coverage)", tok.StartCol, col)
		}
		col = tok.EndCol
	}
	if col != len("func main() {") {
		t.Errorf("tokens end at column %d, want %d", col, len("func main() {"))
	}

	if got := p.Generation(); got == 0 {
		t.Errorf("Generation() = %d, want > 0", got)
	}
}

func TestProviderStaleCacheRetokenizes(t *testing.T) {
	p := NewProvider("go")
	defer p.Close()

	text := "x := 1"
	p.SetLineGetter(func(int) string { return text })

	waitForBatch(t, p, func() { p.TokensForLine(1) })
	if got := p.TokensForLine(1); len(got) == 0 {
		t.Fatal("TokensForLine(1) = empty after first batch")
	}

	// Changing the line content makes the cache entry stale.
	text = "y := 2"
	waitForBatch(t, p, func() {
		if got := p.TokensForLine(1); got != nil {
			t.Errorf("TokensForLine(1) = %v for stale entry, want nil", got)
		}
	})
	if got := p.TokensForLine(1); len(got) == 0 {
		t.Error("TokensForLine(1) = empty after retokenization, want tokens")
	}
}

func TestStyleSpansForWithoutTokens(t *testing.T) {
	p := NewProvider("go")
	defer p.Close()

	offsets := mapping.NewOffsetRange(2, 7)
	spans := p.StyleSpansFor(1, offsets)

	if len(spans) != 1 {
		t.Fatalf("StyleSpansFor() returned %d spans, want 1", len(spans))
	}
	if spans[0].Start != 2 || spans[0].End != 7 {
		t.Errorf("span = [%d, %d), want [2, 7)", spans[0].Start, spans[0].End)
	}
	if spans[0].Style != p.Theme().Default() {
		t.Errorf("span style = %v, want theme default", spans[0].Style)
	}
}

func TestStyleSpansForEmptyRange(t *testing.T) {
	p := NewProvider("go")
	defer p.Close()

	if got := p.StyleSpansFor(1, mapping.NewOffsetRange(3, 3)); got != nil {
		t.Errorf("StyleSpansFor(empty range) = %v, want nil", got)
	}
}

func TestStyleSpansForClipsTokens(t *testing.T) {
	p := NewProvider("go")
	defer p.Close()

	p.SetLineGetter(func(int) string { return "func main() {" })
	waitForBatch(t, p, func() { p.TokensForLine(1) })

	offsets := mapping.NewOffsetRange(2, 6)
	spans := p.StyleSpansFor(1, offsets)

	if len(spans) == 0 {
		t.Fatal("StyleSpansFor() = empty, want clipped spans")
	}
	for _, s := range spans {
		if s.Start < offsets.Start || s.End > offsets.End {
			t.Errorf("span [%d, %d) escapes requested range %v", s.Start, s.End, offsets)
		}
	}
	if spans[0].Start != 2 {
		t.Errorf("first span starts at %d, want 2", spans[0].Start)
	}
	if last := spans[len(spans)-1]; last.End != 6 {
		t.Errorf("last span ends at %d, want 6", last.End)
	}
}

func TestProviderCloseIdempotent(t *testing.T) {
	p := NewProvider("go")
	p.Close()
	p.Close()
}

func TestProviderInvalidate(t *testing.T) {
	p := NewProvider("go")
	defer p.Close()

	p.SetLineGetter(func(int) string { return "x := 1" })
	waitForBatch(t, p, func() { p.TokensForLine(1) })

	p.Invalidate(1)
	// A fresh read after invalidation reschedules; the text is unchanged so
	// the entry is rebuilt identically.
	if got := p.TokensForLine(1); got != nil {
		t.Errorf("TokensForLine(1) = %v after Invalidate, want nil", got)
	}
}
