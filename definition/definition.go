// Package definition loads patterns described as data.
//
// A pattern file is YAML or JSON with a top-level "patterns" map. Each entry
// is a node tree:
//
//	patterns:
//	  date:
//	    and:
//	      - group: year
//	        of: {times: 4, of: {class: Digit}}
//	      - "-"
//	      - group: month
//	        of: {times: 2, of: {class: Digit}}
//
// A node is either a plain string (literal text) or a map with exactly one
// of the keys text, raw, class, times, one_or_more, optional, group, and, or.
// class accepts a sibling "not: true"; times and group take their body from
// "of".
package definition

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/pkg/errors"

	"go.dw1.io/magicregexp"
	"go.dw1.io/magicregexp/internal/logger"
)

const (
	// Delimiter separates key path segments; pattern names must not contain it.
	Delimiter = "."

	rootKey = "patterns"
)

var log = logger.GetLogger("definition")

// Set holds the patterns decoded from one source, keyed by name.
type Set struct {
	source    string
	fragments map[string]magicregexp.Fragment
}

// Load reads and decodes the pattern file at path. The format follows the
// extension: .yaml, .yml or .json.
func Load(path string) (*Set, error) {
	parser, err := parserFor(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	k := koanf.New(Delimiter)
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return newSet(k, path)
}

// Parse decodes pattern definitions from data in the given format, "yaml" or
// "json".
func Parse(data []byte, format string) (*Set, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(Delimiter)
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	return newSet(k, "<"+format+">")
}

func parserFor(format string) (koanf.Parser, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Parser(), nil
	case "json":
		return json.Parser(), nil
	default:
		return nil, errors.Errorf("unsupported pattern file format %q", format)
	}
}

func newSet(k *koanf.Koanf, source string) (*Set, error) {
	if !k.Exists(rootKey) {
		return nil, errors.Errorf("%s: missing %q", source, rootKey)
	}

	s := &Set{
		source:    source,
		fragments: make(map[string]magicregexp.Fragment),
	}

	for _, name := range k.MapKeys(rootKey) {
		path := rootKey + Delimiter + name
		f, err := decode(path, k.Get(path))
		if err != nil {
			return nil, errors.Wrap(err, source)
		}
		s.fragments[name] = f
		log.Debugf("Decoded %s = %s", name, magicregexp.Render(f))
	}

	log.Debugf("Loaded %d patterns from %s", len(s.fragments), source)
	return s, nil
}

// Source names where the set was loaded from.
func (s *Set) Source() string {
	return s.source
}

// Names returns the pattern names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.fragments))
	for name := range s.fragments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fragment returns the pattern called name.
func (s *Set) Fragment(name string) (magicregexp.Fragment, error) {
	f, ok := s.fragments[name]
	if !ok {
		return nil, errors.Errorf("%s: no pattern named %q", s.source, name)
	}
	return f, nil
}
