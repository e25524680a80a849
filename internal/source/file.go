// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// fileSource reads one configuration document from disk and flattens it
// into dotted keys: {"host": {"port": 8080}} becomes host.port=8080 and
// list items are addressed by index (hosts.0, hosts.1).
type fileSource struct {
	name       string
	precedence int
	path       string
	decode     func(path string, data []byte) ([]Entry, error)
}

// NewJSONFile returns a source reading a JSON document at path.
func NewJSONFile(path string) Source {
	return &fileSource{name: "file:json", precedence: PrecedenceJSONFile, path: path, decode: decodeJSON}
}

// NewYAMLFile returns a source reading a YAML document at path.
func NewYAMLFile(path string) Source {
	return &fileSource{name: "file:yaml", precedence: PrecedenceYAMLFile, path: path, decode: decodeYAML}
}

func (s *fileSource) Name() string    { return s.name }
func (s *fileSource) Precedence() int { return s.precedence }

func (s *fileSource) Load(_ context.Context, _ Values) ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	entries, err := s.decode(s.path, data)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", s.path, err)
	}

	return entries, nil
}

func decodeJSON(_ string, data []byte) ([]Entry, error) {
	return flattenJSON("", data)
}

// flattenJSON decodes a JSON document and flattens it below prefix. Numbers
// keep their textual form.
func flattenJSON(prefix string, data []byte) ([]Entry, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}

	var entries []Entry
	if err := flatten(prefix, doc, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeYAML(_ string, data []byte) ([]Entry, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	var entries []Entry
	if err := flatten("", doc, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func flatten(prefix string, value any, out *[]Entry) error {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := flatten(joinKey(prefix, k), v[k], out); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		converted := make(map[string]any, len(v))
		for k, item := range v {
			converted[fmt.Sprint(k)] = item
		}
		return flatten(prefix, converted, out)
	case []any:
		for i, item := range v {
			if err := flatten(joinKey(prefix, strconv.Itoa(i)), item, out); err != nil {
				return err
			}
		}
		return nil
	}

	if prefix == "" {
		return fmt.Errorf("%w: document root must be an object", ErrUnsupportedValue)
	}

	scalar, err := scalarString(value)
	if err != nil {
		return fmt.Errorf("%w at %q", err, prefix)
	}
	*out = append(*out, Entry{Key: prefix, Value: scalar})
	return nil
}

func scalarString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}
