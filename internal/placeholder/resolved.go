package placeholder

import (
	"maps"
	"strings"

	"github.com/MKhiriev/bootcamp-webapi/internal/source"
)

// Resolved is the placeholder-free configuration snapshot. It is never
// mutated after [Resolve] returns and is safe for concurrent reads.
type Resolved struct {
	values map[string]string
}

// Get returns the value of key, or "" when the key is absent.
func (r *Resolved) Get(key string) string {
	return r.values[source.NormalizeKey(key)]
}

// Lookup returns the value of key and whether it is present.
func (r *Resolved) Lookup(key string) (string, bool) {
	v, ok := r.values[source.NormalizeKey(key)]
	return v, ok
}

// Keys returns all keys in lexical order.
func (r *Resolved) Keys() []string {
	return sortedKeys(r.values)
}

func (r *Resolved) Len() int {
	return len(r.values)
}

// Subtree returns the entries below prefix with the prefix and its
// separator stripped. Subtree("features") of {features.beta: true} is
// {beta: true}.
func (r *Resolved) Subtree(prefix string) map[string]string {
	p := source.NormalizeKey(prefix)
	if p != "" {
		p += "."
	}

	out := make(map[string]string)
	for k, v := range r.values {
		if rest, ok := strings.CutPrefix(k, p); ok && rest != "" {
			out[rest] = v
		}
	}
	return out
}

// Map returns a copy of the snapshot.
func (r *Resolved) Map() map[string]string {
	return maps.Clone(r.values)
}
