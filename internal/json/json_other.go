//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import "encoding/json"

// MarshalIndent encodes v as indented JSON.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}
