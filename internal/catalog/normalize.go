// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeFeatures turns a raw feature payload into a single canonical string.
//
// Sequences are joined with a single space in order (nil elements skipped),
// scalars are stringified and nil yields the empty string.
func NormalizeFeatures(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			if elem == nil {
				continue
			}
			parts = append(parts, NormalizeFeatures(elem))
		}
		return strings.Join(parts, " ")
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return NormalizeFeatures(float64(v))
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// CollectionKey derives the franchise key from a raw collection value.
//
// Struct-like values (TMDB stores belongs_to_collection as an object) use
// their "id" field, falling back to "name". Missing values and NaN map to
// the empty string, meaning "standalone".
func CollectionKey(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return CollectionKey(float64(v))
	case map[string]any:
		if id, ok := v["id"]; ok && id != nil {
			return CollectionKey(id)
		}
		if name, ok := v["name"]; ok && name != nil {
			return CollectionKey(name)
		}
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// TitleKey is the lookup key for a title: trimmed and lower-cased.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
