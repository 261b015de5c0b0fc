package definition

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"go.dw1.io/magicregexp"
	"go.dw1.io/magicregexp/internal/cast"
)

// primaryKeys are the node keys that select a fragment variant, mapped to
// the secondary keys each one allows.
var primaryKeys = map[string][]string{
	"text":        nil,
	"raw":         nil,
	"class":       {"not"},
	"times":       {"of"},
	"one_or_more": nil,
	"optional":    nil,
	"group":       {"of"},
	"and":         nil,
	"or":          nil,
}

func decode(path string, v any) (magicregexp.Fragment, error) {
	if s, ok := v.(string); ok {
		return magicregexp.Literal(s), nil
	}

	node, err := cast.StringMap(v)
	if err != nil {
		// other scalars (numbers, booleans) are literal text too
		s, serr := cast.String(v)
		if serr != nil {
			return nil, errors.Wrap(err, path)
		}
		return magicregexp.Literal(s), nil
	}

	key, err := primaryKey(path, node)
	if err != nil {
		return nil, err
	}

	switch key {
	case "text", "raw":
		s, err := cast.String(node[key])
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", path, key)
		}
		if key == "raw" {
			return magicregexp.Raw(s), nil
		}
		return magicregexp.Literal(s), nil

	case "class":
		return decodeClass(path, node)

	case "times":
		n, err := cast.Int(node[key])
		if err != nil {
			return nil, errors.Wrapf(err, "%s.times", path)
		}
		if n < 0 {
			return nil, errors.Errorf("%s.times: count must not be negative, got %d", path, n)
		}
		body, err := decodeOf(path, node)
		if err != nil {
			return nil, err
		}
		return magicregexp.Repeated(body, uint(n)), nil

	case "one_or_more", "optional":
		body, err := decode(path+Delimiter+key, node[key])
		if err != nil {
			return nil, err
		}
		if key == "optional" {
			return magicregexp.Optional(body), nil
		}
		return magicregexp.OneOrMore(body), nil

	case "group":
		name, err := cast.String(node[key])
		if err != nil {
			return nil, errors.Wrapf(err, "%s.group", path)
		}
		body, err := decodeOf(path, node)
		if err != nil {
			return nil, err
		}
		return magicregexp.Named(body, name), nil

	default: // "and", "or"
		items, err := cast.Slice(node[key])
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", path, key)
		}
		if len(items) == 0 {
			return nil, errors.Errorf("%s.%s: list is empty", path, key)
		}
		frags := make([]magicregexp.Fragment, len(items))
		for i, item := range items {
			if frags[i], err = decode(path+Delimiter+key+"["+strconv.Itoa(i)+"]", item); err != nil {
				return nil, err
			}
		}
		if key == "or" {
			return magicregexp.AnyOf(frags...), nil
		}
		return magicregexp.Concat(frags...), nil
	}
}

// primaryKey finds the single variant key of node and rejects keys that do
// not belong with it.
func primaryKey(path string, node map[string]any) (string, error) {
	var found []string
	for k := range node {
		if _, ok := primaryKeys[k]; ok {
			found = append(found, k)
		}
	}
	sort.Strings(found)

	if len(found) != 1 {
		return "", errors.Errorf("%s: want exactly one of %s, got %v", path, strings.Join(sortedPrimaryKeys(), ", "), found)
	}

	key := found[0]
	for k := range node {
		if k != key && !contains(primaryKeys[key], k) {
			return "", errors.Errorf("%s: unexpected key %q next to %q", path, k, key)
		}
	}

	return key, nil
}

func decodeClass(path string, node map[string]any) (magicregexp.Fragment, error) {
	name, err := cast.String(node["class"])
	if err != nil {
		return nil, errors.Wrapf(err, "%s.class", path)
	}

	kind, ok := lookupKind(name)
	if !ok {
		return nil, errors.Errorf("%s.class: unknown character class %q", path, name)
	}

	if v, ok := node["not"]; ok {
		neg, err := cast.Bool(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.not", path)
		}
		if neg {
			kind = magicregexp.Not(kind)
		}
	}

	return kind, nil
}

func decodeOf(path string, node map[string]any) (magicregexp.Fragment, error) {
	v, ok := node["of"]
	if !ok {
		return nil, errors.Errorf("%s: missing \"of\"", path)
	}
	return decode(path+Delimiter+"of", v)
}

// lookupKind matches kind names case-insensitively.
func lookupKind(name string) (magicregexp.Kind, bool) {
	if k, ok := magicregexp.KindByName(name); ok {
		return k, true
	}
	for _, k := range magicregexp.Kinds() {
		if strings.EqualFold(k.Name(), name) {
			return k, true
		}
	}
	return 0, false
}

func sortedPrimaryKeys() []string {
	keys := make([]string, 0, len(primaryKeys))
	for k := range primaryKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
