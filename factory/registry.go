package factory

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Kind names a document kind a Registry can create.
type Kind string

const (
	KindResume Kind = "resume"
	KindReport Kind = "report"
)

// DemoKinds is the order the demonstration generates documents in.
var DemoKinds = []Kind{KindResume, KindReport}

// ErrProviderPanic is returned by Registry.Generate if a registered provider panics
// while creating its document.
var ErrProviderPanic = errors.New("factory: panic during Generate")

// UnknownKindError is returned when no creator is registered for a kind.
type UnknownKindError struct{ Kind Kind }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: factory: unknown document kind "memo"
	return "factory: unknown document kind " + strconv.Quote(string(e.Kind))
}

// Registry maps kinds to creators.
//
// It is populated once at startup and read afterwards. It is not safe for
// concurrent Provide calls.
type Registry struct {
	items map[Kind]DocumentFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[Kind]DocumentFactory{}}
}

// DefaultRegistry returns a registry with the resume and report creators.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Provide(KindResume, ResumeFactory{}).
		Provide(KindReport, ReportFactory{})
}

// Provide stores a creator under a kind and returns the registry for chaining.
// A later Provide for the same kind replaces the earlier one.
func (r *Registry) Provide(kind Kind, f DocumentFactory) *Registry {
	r.items[kind] = f
	return r
}

// Get returns the creator if present (no panic).
func (r *Registry) Get(kind Kind) (DocumentFactory, bool) {
	f, ok := r.items[kind]
	return f, ok
}

// Resolve returns the creator for kind. It only looks the creator up; no
// document is created.
func (r *Registry) Resolve(kind Kind) (DocumentFactory, error) {
	f, ok := r.items[kind]
	if !ok || f == nil {
		return nil, UnknownKindError{Kind: kind}
	}
	return f, nil
}

// Generate resolves kind and runs the client assembly, creating exactly one
// document. A nil document or a panicking provider is reported as an error.
func (r *Registry) Generate(kind Kind) (out string, err error) {
	f, err := r.Resolve(kind)
	if err != nil {
		return "", err
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = ""
			err = fmt.Errorf("%w: %v", ErrProviderPanic, rec)
		}
	}()

	doc := f.CreateDocument()
	if doc == nil {
		return "", fmt.Errorf("factory: provider for %q returned a nil document", kind)
	}
	return assemble(doc), nil
}

// MustGet returns the creator or panics with a helpful message.
// Useful in examples/tests where a missing kind should fail fast.
func (r *Registry) MustGet(kind Kind) DocumentFactory {
	f, ok := r.items[kind]
	if !ok {
		panic(UnknownKindError{Kind: kind})
	}
	return f
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
