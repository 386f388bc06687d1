package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Tag is the canonical tag record. Stored codebooks may hold tags as plain
// strings or as objects; both decode into this shape.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// UnmarshalJSON accepts "name", {"name": ...}, {"tag": ...} or {"label": ...}
func (t *Tag) UnmarshalJSON(data []byte) error {
	name, desc, err := decodeTag(data)
	if err != nil {
		return err
	}
	t.Name, t.Description = name, desc
	return nil
}

// MarshalJSON writes a plain string unless the tag carries a description
func (t Tag) MarshalJSON() ([]byte, error) {
	if t.Description == "" {
		return json.Marshal(t.Name)
	}
	type plain Tag
	return json.Marshal(plain(t))
}

// MarshalYAML mirrors MarshalJSON
func (t Tag) MarshalYAML() (any, error) {
	if t.Description == "" {
		return t.Name, nil
	}
	return map[string]string{"name": t.Name, "description": t.Description}, nil
}

func decodeTag(data []byte) (string, string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", "", nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", "", err
		}
		return s, "", nil
	}

	var obj struct {
		Name        string `json:"name"`
		Tag         string `json:"tag"`
		Label       string `json:"label"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", "", fmt.Errorf("decoding tag: %w", err)
	}
	switch {
	case obj.Name != "":
		return obj.Name, obj.Description, nil
	case obj.Tag != "":
		return obj.Tag, obj.Description, nil
	default:
		return obj.Label, obj.Description, nil
	}
}

// CodebookCategory is one category and its ordered tags
type CodebookCategory struct {
	Category string `json:"category" yaml:"category"`
	Tags     []Tag  `json:"tags" yaml:"tags"`
}

// UnmarshalJSON also accepts "name" for the category field
func (c *CodebookCategory) UnmarshalJSON(data []byte) error {
	var raw struct {
		Category string `json:"category"`
		Name     string `json:"name"`
		Tags     []Tag  `json:"tags"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Category = raw.Category
	if c.Category == "" {
		c.Category = raw.Name
	}
	c.Tags = raw.Tags
	return nil
}

// TagNames returns the tag names in order
func (c CodebookCategory) TagNames() []string {
	names := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		names[i] = t.Name
	}
	return names
}

// Codebook is the ordered taxonomy of a project
type Codebook []CodebookCategory

// ParseCodebook decodes stored codebook JSON. Empty input is an empty codebook.
func ParseCodebook(raw string) (Codebook, error) {
	if strings.TrimSpace(raw) == "" {
		return Codebook{}, nil
	}
	var cb Codebook
	if err := json.Unmarshal([]byte(raw), &cb); err != nil {
		return nil, fmt.Errorf("parsing codebook: %w", err)
	}
	if cb == nil {
		cb = Codebook{}
	}
	return cb, nil
}

// Encode serializes the codebook for storage
func (cb Codebook) Encode() (string, error) {
	if cb == nil {
		cb = Codebook{}
	}
	data, err := json.Marshal(cb)
	if err != nil {
		return "", fmt.Errorf("encoding codebook: %w", err)
	}
	return string(data), nil
}

// Find returns the category with the exact given name
func (cb Codebook) Find(category string) (CodebookCategory, bool) {
	for _, c := range cb {
		if c.Category == category {
			return c, true
		}
	}
	return CodebookCategory{}, false
}

// Validate rejects blank or duplicate category names
func (cb Codebook) Validate() error {
	seen := make(map[string]struct{}, len(cb))
	for i, c := range cb {
		if strings.TrimSpace(c.Category) == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if _, dup := seen[c.Category]; dup {
			return fmt.Errorf("duplicate category %q", c.Category)
		}
		seen[c.Category] = struct{}{}
	}
	return nil
}
