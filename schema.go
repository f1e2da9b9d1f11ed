package bitfield

import (
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
)

// Schema is the serializable description of a codec's layout, for example:
//
//	{
//	  "name": "instruction",
//	  "width": 32,
//	  "fields": [
//	    {"name": "opcode", "width": 5},
//	    {"name": "operand", "width": 27}
//	  ]
//	}
type Schema struct {
	Name   string        `json:"name,omitempty"`
	Width  uint          `json:"width"`
	Fields []FieldSchema `json:"fields"`
}

// FieldSchema describes a single field of a Schema.
type FieldSchema struct {
	Name  string `json:"name,omitempty"`
	Width uint   `json:"width"`
}

// ParseSchema decodes a JSON schema document.
func ParseSchema(b []byte) (*Schema, error) {
	s := new(Schema)
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("decoding bitfield schema: %w", err)
	}
	return s, nil
}

// ReadSchema reads and decodes a JSON schema document from r.
func ReadSchema(r io.Reader) (*Schema, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bitfield schema: %w", err)
	}
	return ParseSchema(b)
}

// MarshalIndent encodes s as an indented JSON document.
func (s *Schema) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Codec constructs a codec from s.
//
// The method returns an error wrapping ErrInvalidSchema if the fields do not
// fit in the declared width, or if two fields share the same name.
func (s *Schema) Codec() (*Codec, error) {
	widths := make([]uint, len(s.Fields))
	names := make([]string, len(s.Fields))
	seen := make(map[string]int, len(s.Fields))

	for i, f := range s.Fields {
		if f.Name != "" {
			if j, dup := seen[f.Name]; dup {
				return nil, errInvalidSchema("fields %d and %d are both named %q", j, i, f.Name)
			}
			seen[f.Name] = i
		}
		widths[i] = f.Width
		names[i] = f.Name
	}

	c, err := newCodec(s.Name, s.Width, widths, names)
	if err != nil && s.Name != "" {
		err = fmt.Errorf("%s: %w", s.Name, err)
	}
	return c, err
}

// Schema returns the schema describing c.
func (c *Codec) Schema() *Schema {
	s := &Schema{
		Name:   c.name,
		Width:  c.width,
		Fields: make([]FieldSchema, len(c.widths)),
	}
	for i, w := range c.widths {
		s.Fields[i] = FieldSchema{Name: c.names[i], Width: w}
	}
	return s
}
