package model

import "strings"

// Path represents a file system path.
type Path string

// HasExt reports whether the path's name ends with ext, ignoring case.
func (p Path) HasExt(ext string) bool {
	return strings.HasSuffix(strings.ToLower(string(p)), strings.ToLower(ext))
}

// QName is an expanded XML name: namespace URI plus local name.
type QName struct {
	Space string
	Local string
}

// String renders the name in Clark notation, e.g. {urn:example}Root.
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}

	return "{" + q.Space + "}" + q.Local
}
