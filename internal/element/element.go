package element

import "fmt"

// Element describes one generatable artifact type.
type Element struct {
	Name            string `yaml:"name"`
	Alias           string `yaml:"alias"`
	Description     string `yaml:"description"`
	DefaultWithTest bool   `yaml:"defaultWithTest"`
}

// Registry is the ordered, read-only list of known elements.
type Registry struct {
	version  string
	elements []Element
}

// DuplicateKeyError reports a name or alias claimed by two elements.
type DuplicateKeyError struct {
	Key    string
	First  string // element that claimed Key first
	Second string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key %q of element %q is already used by element %q", e.Key, e.Second, e.First)
}

// New builds a registry from elements, keeping their order. Every name and
// alias must be unique across the whole registry, names and aliases
// together, so a lookup token can never match two elements.
func New(version string, elements []Element) (*Registry, error) {
	owners := make(map[string]string, len(elements)*2)
	for _, el := range elements {
		if el.Name == "" || el.Alias == "" {
			return nil, fmt.Errorf("element %q: name and alias must not be empty", el.Name)
		}
		keys := []string{el.Name}
		if el.Alias != el.Name {
			keys = append(keys, el.Alias)
		}
		for _, key := range keys {
			if owner, taken := owners[key]; taken {
				return nil, &DuplicateKeyError{Key: key, First: owner, Second: el.Name}
			}
			owners[key] = el.Name
		}
	}

	frozen := make([]Element, len(elements))
	copy(frozen, elements)
	return &Registry{version: version, elements: frozen}, nil
}

// Version returns the registry document version.
func (r *Registry) Version() string { return r.version }

// Len returns the number of registered elements.
func (r *Registry) Len() int { return len(r.elements) }

// Elements returns the elements in registry order. The slice is a copy.
func (r *Registry) Elements() []Element {
	out := make([]Element, len(r.elements))
	copy(out, r.elements)
	return out
}

// Lookup finds the element whose name or alias equals token exactly.
// The bool reports whether one was found; the Element is the zero value
// otherwise and must not be used.
func (r *Registry) Lookup(token string) (Element, bool) {
	for _, el := range r.elements {
		if el.Name == token || el.Alias == token {
			return el, true
		}
	}
	return Element{}, false
}
