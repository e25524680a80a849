// Package placeholder resolves ${key} and ${key:default} references inside a
// merged configuration and produces the immutable [Resolved] snapshot.
package placeholder
