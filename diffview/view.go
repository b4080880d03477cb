// Package diffview wires the inline diff overlay together: it owns the
// reactive subscriptions that recompute decorations and view zones whenever
// the rendering state, the modified document, or tokenization progress
// changes, and it attributes mouse clicks on injected insertion previews.
package diffview

import (
	"github.com/google/uuid"

	"github.com/dshills/inlinediff/decoration"
	"github.com/dshills/inlinediff/document"
	"github.com/dshills/inlinediff/highlight"
	"github.com/dshills/inlinediff/mapping"
	"github.com/dshills/inlinediff/observe"
	"github.com/dshills/inlinediff/viewzone"
)

// RenderState is the externally supplied rendering state. The view never
// mutates it; a new state is pushed through the observable on every change.
type RenderState struct {
	decoration.State

	// ModifiedEditor is the paired editor for the modified buffer.
	// May be nil while the pane is not mounted.
	ModifiedEditor Editor
}

// CanRenderInline reports whether a hunk supports character-level inline
// rendering.
func CanRenderInline(m mapping.LineRangeMapping) bool {
	return decoration.CanRenderInline(m)
}

// Option configures an InlineDiffView.
type Option func(*InlineDiffView)

// WithLanguage sets the language used for tokenizing the modified buffer.
func WithLanguage(language string) Option {
	return func(v *InlineDiffView) {
		v.language = language
	}
}

// WithShowEmpty toggles the visible empty-change indicator.
func WithShowEmpty(show bool) Option {
	return func(v *InlineDiffView) {
		v.showEmpty = show
	}
}

// InlineDiffView renders an inline diff overlay onto an original-buffer
// editor, previewing the modified buffer's insertions in place. All of its
// subscriptions live in one store and are released together on Close.
type InlineDiffView struct {
	store    *observe.Store
	original Editor
	state    *observe.Value[*RenderState]

	ownerID   string
	language  string
	showEmpty bool

	provider  *highlight.Provider
	synth     *decoration.Synthesizer
	zoneSynth *viewzone.Synthesizer

	tokenGen *observe.Counter
	docRev   *observe.Counter

	decorations *observe.Derived[*decoration.Set]

	hovered *observe.Value[bool]
	clicked *observe.Emitter[MouseEvent]
}

// lfText adapts a document to the synthesizer's text source, normalizing
// line endings to "\n".
type lfText struct {
	doc *document.Document
}

func (t lfText) TextInRange(r mapping.Range) string {
	return t.doc.TextInRange(r, document.EOLLF)
}

// New creates a view over the original editor, driven by the given state
// observable and previewing content from the modified document. The state
// may hold nil; the view then pushes empty decoration and zone sets.
// Close must be called to release the view's subscriptions.
func New(original Editor, state *observe.Value[*RenderState], modified *document.Document, opts ...Option) *InlineDiffView {
	v := &InlineDiffView{
		store:     observe.NewStore(),
		original:  original,
		state:     state,
		ownerID:   uuid.NewString(),
		showEmpty: true,
		hovered:   observe.NewValue(false),
		clicked:   observe.NewEmitter[MouseEvent](),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.provider = highlight.NewProvider(v.language)
	v.provider.SetLineGetter(modified.Line)
	v.store.AddFunc(v.provider.Close)

	v.tokenGen = observe.CounterFromEmitter(v.store, v.provider.TokensChanged())
	v.docRev = observe.CounterFromEmitter(v.store, modified.Changed())

	v.synth = decoration.NewSynthesizer(
		lfText{doc: original.Document()},
		decoration.WithTokenSource(v.provider),
		decoration.WithShowEmpty(v.showEmpty),
	)
	v.zoneSynth = viewzone.NewSynthesizer(modified, viewzone.WithTokenSource(v.provider))

	v.decorations = observe.NewDerived(v.store, func(t *observe.Track) *decoration.Set {
		st := observe.Read[*RenderState](t, v.state)
		observe.Read[uint64](t, v.tokenGen)
		observe.Read[uint64](t, v.docRev)
		if st == nil {
			return nil
		}
		return v.synth.Synthesize(&st.State)
	})

	// Original-side decorations.
	observe.Autorun(v.store, func(t *observe.Track) {
		set := observe.Read[*decoration.Set](t, v.decorations)
		var decs []decoration.Decoration
		if set != nil {
			decs = set.Original
		}
		v.original.SetDecorations(v.ownerID, decs)
	})

	// View zones for interleaved-lines mode.
	observe.Autorun(v.store, func(t *observe.Track) {
		st := observe.Read[*RenderState](t, v.state)
		observe.Read[uint64](t, v.tokenGen)
		observe.Read[uint64](t, v.docRev)

		var zones []viewzone.Zone
		if st != nil {
			opts := v.original.Options()
			zones = v.zoneSynth.Synthesize(&st.State, viewzone.Metrics{
				LineHeight: opts.LineHeight,
				CellWidth:  opts.CellWidth,
			})
		}
		v.original.SetViewZones(v.ownerID, zones)
	})

	// Modified-side decorations. The inner runner is scoped to the outer
	// run's store, so swapping the modified editor reference tears down the
	// push subscription onto the previous editor.
	observe.Autorun(v.store, func(t *observe.Track) {
		st := observe.Read[*RenderState](t, v.state)
		if st == nil || st.ModifiedEditor == nil {
			return
		}
		editor := st.ModifiedEditor
		observe.Autorun(t.Store(), func(inner *observe.Track) {
			set := observe.Read[*decoration.Set](inner, v.decorations)
			var decs []decoration.Decoration
			if set != nil {
				decs = set.Modified
			}
			editor.SetDecorations(v.ownerID, decs)
		})
	})

	v.store.Add(original.OnMouseMove(func(ev MouseEvent) {
		h := v.hits(ev)
		if v.hovered.Get() != h {
			v.hovered.Set(h)
		}
	}))
	v.store.Add(original.OnMouseUp(func(ev MouseEvent) {
		if v.hits(ev) {
			v.clicked.Fire(ev)
		}
	}))

	return v
}

// hits reports whether a mouse event landed on this view's injected content.
// Attribution is by tag identity, never by content inspection.
func (v *InlineDiffView) hits(ev MouseEvent) bool {
	return ev.Target.Type == TargetText &&
		ev.Target.Injected != nil &&
		ev.Target.Injected.Tag == v.synth.Tag()
}

// Tag returns the click-attribution tag carried by this view's injected
// decorations.
func (v *InlineDiffView) Tag() *decoration.ClickTag {
	return v.synth.Tag()
}

// Clicked returns the stream fired when the user clicks an injected
// insertion preview. Events carry the originating raw mouse event.
func (v *InlineDiffView) Clicked() *observe.Emitter[MouseEvent] {
	return v.clicked
}

// Hovered returns the observable reporting whether the cursor is over an
// injected insertion preview.
func (v *InlineDiffView) Hovered() *observe.Value[bool] {
	return v.hovered
}

// Decorations pulls the current decoration set. Nil when no state is set.
func (v *InlineDiffView) Decorations() *decoration.Set {
	return v.decorations.Get()
}

// Close releases every subscription and stops the tokenizer worker. No
// decoration or view-zone pushes occur after Close returns.
func (v *InlineDiffView) Close() {
	v.store.Dispose()
}
