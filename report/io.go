package report

import (
	"encoding/json"
	"io"
)

// Encode writes v as indented JSON to w.
func Encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Decode reads a JSON document from r into v.
func Decode(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}
