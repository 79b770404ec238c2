// Package properties decodes the serialized key/value bag attached to
// inventory records.
//
// A bag is a flat JSON object. Decode keeps the source order of the keys,
// which a plain map[string]any would lose, and renders every value as a
// string: JSON strings are unquoted, any other value keeps its compact JSON
// text so it can be decoded again (see DecodeStringList).
package properties

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Well-known keys written by the agents.
const (
	KeyLanguage  = "language"
	KeyOSName    = "OS Name"
	KeyHostName  = "hostname"
	KeyProcessNo = "Process No."
	KeyIPv4s     = "ipv4s"
	KeyDatabase  = "database"
)

var ErrNotAnObject = errors.New("properties must be a JSON object")

type KeyValue struct {
	Key   string
	Value string
	// Null marks a JSON null value. Value is empty then.
	Null bool
}

// Decode returns the pairs of blob in source order. An empty blob yields no pairs.
func Decode(blob string) ([]KeyValue, error) {
	if strings.TrimSpace(blob) == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(blob))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotAnObject
	}

	var pairs []KeyValue
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode properties key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected properties key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode value of %q: %w", key, err)
		}
		value, err := rawToString(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode value of %q: %w", key, err)
		}
		pairs = append(pairs, KeyValue{Key: key, Value: value, Null: isNull(raw)})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after properties object")
	}

	return pairs, nil
}

// Lookup decodes blob and returns the value of the first occurrence of key.
// A key holding null is reported as absent.
func Lookup(blob, key string) (string, bool, error) {
	pairs, err := Decode(blob)
	if err != nil {
		return "", false, err
	}
	for _, p := range pairs {
		if p.Key == key {
			return p.Value, !p.Null, nil
		}
	}
	return "", false, nil
}

// DecodeStringList decodes a value holding a serialized JSON array of strings.
func DecodeStringList(value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, fmt.Errorf("failed to decode string list: %w", err)
	}
	return list, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func rawToString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if isNull(trimmed) {
		return "", nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", err
	}
	return buf.String(), nil
}
