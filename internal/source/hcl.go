// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// NewHCLFile returns a source reading an HCL document at path. Blocks become
// key segments, including their labels:
//
//	host {
//	  port = 8080
//	  tls { cert_file = "/etc/tls.crt" }
//	}
//	features "beta" { enabled = true }
//
// yields host.port, host.tls.cert_file and features.beta.enabled.
// Expressions are evaluated without variables or functions; a literal
// placeholder must be written as "$${key}" to escape HCL interpolation.
func NewHCLFile(path string) Source {
	return &fileSource{name: "file:hcl", precedence: PrecedenceHCLFile, path: path, decode: decodeHCL}
}

func decodeHCL(path string, data []byte) ([]Entry, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected HCL body %T", ErrUnsupportedValue, file.Body)
	}

	var entries []Entry
	if err := flattenHCLBody("", body, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func flattenHCLBody(prefix string, body *hclsyntax.Body, out *[]Entry) error {
	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		attr := body.Attributes[name]
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate %q: %w", joinKey(prefix, name), diags)
		}
		if err := flattenCty(joinKey(prefix, name), value, out); err != nil {
			return err
		}
	}

	for _, block := range body.Blocks {
		segments := append([]string{block.Type}, block.Labels...)
		if err := flattenHCLBody(joinKey(prefix, strings.Join(segments, ".")), block.Body, out); err != nil {
			return err
		}
	}

	return nil
}

func flattenCty(key string, value cty.Value, out *[]Entry) error {
	if !value.IsKnown() {
		return fmt.Errorf("%w: unknown value at %q", ErrUnsupportedValue, key)
	}
	if value.IsNull() {
		*out = append(*out, Entry{Key: key, Value: ""})
		return nil
	}

	ty := value.Type()
	switch {
	case ty == cty.String:
		*out = append(*out, Entry{Key: key, Value: value.AsString()})
	case ty == cty.Number:
		*out = append(*out, Entry{Key: key, Value: value.AsBigFloat().Text('f', -1)})
	case ty == cty.Bool:
		*out = append(*out, Entry{Key: key, Value: strconv.FormatBool(value.True())})
	case ty.IsObjectType() || ty.IsMapType():
		it := value.ElementIterator()
		for it.Next() {
			k, v := it.Element()
			if err := flattenCty(joinKey(key, k.AsString()), v, out); err != nil {
				return err
			}
		}
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		i := 0
		it := value.ElementIterator()
		for it.Next() {
			_, v := it.Element()
			if err := flattenCty(joinKey(key, strconv.Itoa(i)), v, out); err != nil {
				return err
			}
			i++
		}
	default:
		return fmt.Errorf("%w: %s at %q", ErrUnsupportedValue, ty.FriendlyName(), key)
	}

	return nil
}
