//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd

// MarshalIndent encodes v as indented JSON.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}
