package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CategorySelection is the set of tags chosen for one category
type CategorySelection struct {
	Category string
	Tags     []string
}

// Selections maps category names to tag sets while keeping display order.
// It encodes as a JSON object: {"Tone": ["Casual"], "Audience": ["Teens"]}.
type Selections []CategorySelection

// ParseSelections decodes stored categories JSON. Empty input is empty.
func ParseSelections(raw string) (Selections, error) {
	if strings.TrimSpace(raw) == "" {
		return Selections{}, nil
	}
	var sel Selections
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}
	if sel == nil {
		sel = Selections{}
	}
	return sel, nil
}

// Encode serializes the selections for storage
func (s Selections) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding categories: %w", err)
	}
	return string(data), nil
}

// Get returns the tags for a category
func (s Selections) Get(category string) ([]string, bool) {
	for _, c := range s {
		if c.Category == category {
			return c.Tags, true
		}
	}
	return nil, false
}

// Equal reports whether both selections hold the same categories and tags in the same order
func (s Selections) Equal(other Selections) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Category != other[i].Category || len(s[i].Tags) != len(other[i].Tags) {
			return false
		}
		for j := range s[i].Tags {
			if s[i].Tags[j] != other[i].Tags[j] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON writes an object whose keys follow slice order
func (s Selections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Category)
		if err != nil {
			return nil, err
		}
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		val, err := json.Marshal(tags)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object in key order. Tag entries may be strings or
// legacy tag objects; a bare string value is a single tag. Repeated tags
// within a category are collapsed.
func (s *Selections) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding categories: %w", err)
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decoding categories: expected object, got %v", tok)
	}

	out := Selections{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding categories: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding categories for %q: %w", key, err)
		}
		tags, err := decodeTagNames(raw)
		if err != nil {
			return fmt.Errorf("decoding categories for %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			out[i].Tags = tags
			continue
		}
		index[key] = len(out)
		out = append(out, CategorySelection{Category: key, Tags: tags})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding categories: %w", err)
	}

	*s = out
	return nil
}

func decodeTagNames(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}, nil
	}
	if raw[0] != '[' {
		name, _, err := decodeTag(raw)
		if err != nil {
			return nil, err
		}
		return UniqueTags([]string{name}), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		name, _, err := decodeTag(item)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return UniqueTags(names), nil
}

// UniqueTags drops empty and repeated names, keeping first positions
func UniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
