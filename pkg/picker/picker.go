// Package picker implements the query, filter and select mechanism used by the
// editor's search flows.
//
// A Picker is built over a candidate source and a display name function. An
// optional sentinel candidate is pinned at index 0 and is never filtered out.
package picker

import (
	"strings"

	"golang.org/x/text/cases"
)

// Candidate is one entry of the result list.
type Candidate[T comparable] struct {
	Value    T
	Name     string
	Sentinel bool
}

// Choice is the outcome of a commit.
type Choice[T comparable] struct {
	Value    T
	Sentinel bool
}

// Option configures a Picker.
type Option[T comparable] func(*Picker[T])

// WithSentinel pins a special candidate at the top of every result list.
func WithSentinel[T comparable](value T, name string) Option[T] {
	return func(p *Picker[T]) {
		p.sentinel = &Candidate[T]{Value: value, Name: name, Sentinel: true}
	}
}

// Picker holds the query, the filtered results and the selected index.
type Picker[T comparable] struct {
	source   func() []T
	name     func(T) string
	sentinel *Candidate[T]
	fold     cases.Caser

	active   bool
	query    []rune
	results  []Candidate[T]
	selected int // -1 when nothing is selected
}

// New creates an inactive picker.
func New[T comparable](source func() []T, name func(T) string, opts ...Option[T]) *Picker[T] {
	p := &Picker[T]{
		source:   source,
		name:     name,
		fold:     cases.Fold(),
		selected: -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start clears the query and lists the whole candidate domain.
func (p *Picker[T]) Start() {
	p.active = true
	p.query = p.query[:0]
	p.refresh()
}

// SetQuery replaces the query.
func (p *Picker[T]) SetQuery(q string) {
	p.query = []rune(q)
	p.refresh()
}

// AppendQuery adds text to the end of the query.
func (p *Picker[T]) AppendQuery(s string) {
	if s == "" {
		return
	}
	p.query = append(p.query, []rune(s)...)
	p.refresh()
}

// Backspace drops the last rune of the query. The results are recomputed
// even when the query was already empty.
func (p *Picker[T]) Backspace() {
	if len(p.query) > 0 {
		p.query = p.query[:len(p.query)-1]
	}
	p.refresh()
}

// MoveUp moves the selection one entry up, stopping at the first.
func (p *Picker[T]) MoveUp() {
	if len(p.results) == 0 {
		return
	}
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the selection one entry down, stopping at the last.
func (p *Picker[T]) MoveDown() {
	if len(p.results) == 0 {
		return
	}
	if p.selected < len(p.results)-1 {
		p.selected++
	}
}

// Commit returns the selected candidate and resets the picker.
func (p *Picker[T]) Commit() (Choice[T], bool) {
	var choice Choice[T]
	ok := p.selected >= 0 && p.selected < len(p.results)
	if ok {
		c := p.results[p.selected]
		choice = Choice[T]{Value: c.Value, Sentinel: c.Sentinel}
	}
	p.reset()
	return choice, ok
}

// Cancel discards the picker state.
func (p *Picker[T]) Cancel() {
	p.reset()
}

// Active reports whether the picker has been started and not yet closed.
func (p *Picker[T]) Active() bool { return p.active }

// Query returns the current query.
func (p *Picker[T]) Query() string { return string(p.query) }

// Results returns the filtered candidates. The slice must not be modified.
func (p *Picker[T]) Results() []Candidate[T] { return p.results }

// Selected returns the selected index, or false when nothing is selected.
func (p *Picker[T]) Selected() (int, bool) {
	if p.selected < 0 {
		return 0, false
	}
	return p.selected, true
}

// Names returns the display names of the results.
func (p *Picker[T]) Names() []string {
	names := make([]string, len(p.results))
	for i, c := range p.results {
		names[i] = c.Name
	}
	return names
}

func (p *Picker[T]) reset() {
	p.active = false
	p.query = nil
	p.results = nil
	p.selected = -1
}

// refresh recomputes the results and puts the selection back on the first
// entry.
func (p *Picker[T]) refresh() {
	p.results = nil
	if p.sentinel != nil {
		p.results = append(p.results, *p.sentinel)
	}

	needle := p.fold.String(string(p.query))
	var domain []T
	if p.source != nil {
		domain = p.source()
	}
	for _, v := range domain {
		name := p.name(v)
		if needle != "" && !strings.Contains(p.fold.String(name), needle) {
			continue
		}
		p.results = append(p.results, Candidate[T]{Value: v, Name: name})
	}

	if len(p.results) > 0 {
		p.selected = 0
	} else {
		p.selected = -1
	}
}
