package confmerge

import "strings"

// rootMarker opens every human-readable trail, so the root level reads "*".
const rootMarker = "*"

// keyPath records the descent route of a merge for diagnostics only. push
// never mutates the receiver, so sibling keys can share a parent path.
type keyPath struct {
	parts []string
}

func rootPath() keyPath { return keyPath{} }

func (p keyPath) push(key string) keyPath {
	parts := make([]string, len(p.parts), len(p.parts)+1)
	copy(parts, p.parts)
	return keyPath{parts: append(parts, key)}
}

// parent drops the trailing key; the root stays the root.
func (p keyPath) parent() keyPath {
	if len(p.parts) == 0 {
		return p
	}
	return keyPath{parts: p.parts[:len(p.parts)-1]}
}

func (p keyPath) last() string {
	if len(p.parts) == 0 {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointer renders the path as an RFC 6901 JSON Pointer.
func (p keyPath) pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, part := range p.parts {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(part))
	}
	return b.String()
}

// trail renders the path for messages: "* > server > port".
func (p keyPath) trail() string {
	if len(p.parts) == 0 {
		return rootMarker
	}
	return rootMarker + " > " + strings.Join(p.parts, " > ")
}
