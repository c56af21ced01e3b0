package notegen

import (
	"encoding/hex"
	"fmt"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/elfnote/endian"
	"github.com/arloliu/elfnote/internal/hash"
	"github.com/arloliu/elfnote/section"
)

// DescSpec selects exactly one descriptor form for a manifest entry.
type DescSpec struct {
	Uint32 *uint32 `yaml:"uint32,omitempty"`
	Uint64 *uint64 `yaml:"uint64,omitempty"`
	String *string `yaml:"string,omitempty"`
	Bytes  []int   `yaml:"bytes,omitempty"`
	Hex    string  `yaml:"hex,omitempty"`
}

// forms returns the number of descriptor forms set.
func (d *DescSpec) forms() int {
	n := 0
	if d.Uint32 != nil {
		n++
	}
	if d.Uint64 != nil {
		n++
	}
	if d.String != nil {
		n++
	}
	if d.Bytes != nil {
		n++
	}
	if d.Hex != "" {
		n++
	}

	return n
}

// Entry declares one note record.
type Entry struct {
	// Symbol is the Go identifier of the generated variable.
	Symbol string `yaml:"symbol"`
	// Name is the note's owner name.
	Name string `yaml:"name"`
	// Type is the numeric type tag. Mutually exclusive with Vendor.
	Type uint32 `yaml:"type,omitempty"`
	// Vendor is a four-character ASCII tag packed into the type field
	// (the Delve core-dump convention). Mutually exclusive with Type.
	Vendor string `yaml:"vendor,omitempty"`
	// Capacity overrides the name buffer size. Zero means len(Name)+1.
	Capacity int `yaml:"capacity,omitempty"`
	// Desc is the descriptor payload.
	Desc DescSpec `yaml:"desc"`
}

// ResolveType returns the record's type tag.
func (e *Entry) ResolveType() uint32 {
	if e.Vendor != "" {
		return section.VendorType(e.Vendor)
	}

	return e.Type
}

// ResolveCapacity returns the name buffer capacity for this entry.
func (e *Entry) ResolveCapacity() int {
	if e.Capacity > 0 {
		return e.Capacity
	}

	return len(e.Name) + 1
}

// Truncates reports whether the entry's explicit capacity is too small to
// hold the name and its terminator.
func (e *Entry) Truncates() bool {
	return len(e.Name) >= e.ResolveCapacity()
}

// DescBytes encodes the entry's descriptor with the given endian engine.
func (e *Entry) DescBytes(engine endian.EndianEngine) ([]byte, error) {
	switch {
	case e.Desc.Uint32 != nil:
		return engine.AppendUint32(nil, *e.Desc.Uint32), nil
	case e.Desc.Uint64 != nil:
		return engine.AppendUint64(nil, *e.Desc.Uint64), nil
	case e.Desc.String != nil:
		return []byte(*e.Desc.String), nil
	case e.Desc.Bytes != nil:
		data := make([]byte, len(e.Desc.Bytes))
		for i, v := range e.Desc.Bytes {
			if v < 0 || v > 0xFF {
				return nil, fmt.Errorf("entry %q: descriptor byte %d out of range: %d", e.Symbol, i, v)
			}
			data[i] = byte(v)
		}

		return data, nil
	case e.Desc.Hex != "":
		data, err := hex.DecodeString(e.Desc.Hex)
		if err != nil {
			return nil, fmt.Errorf("entry %q: invalid hex descriptor: %w", e.Symbol, err)
		}

		return data, nil
	default:
		// Descriptor-less notes (pure markers) are legal.
		return nil, nil
	}
}

// Manifest is the parsed YAML declaration file.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`
	// Section is the target section name, defaulting to section.DefaultName.
	Section string `yaml:"section,omitempty"`
	// Endian selects the header byte order: "little", "big" or "native"
	// (the default).
	Endian string `yaml:"endian,omitempty"`
	// Notes are the records to generate, emitted in declaration order.
	Notes []Entry `yaml:"notes"`

	raw []byte // source bytes, for the staleness stamp
}

// Parse parses and validates a manifest.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m.raw = data
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks the manifest for problems the generator cannot work around.
// Truncating capacities are deliberately not errors here; the generator
// reports them so callers choose their own strictness.
func (m *Manifest) Validate() error {
	if !isIdentifier(m.Package) {
		return fmt.Errorf("manifest: package %q is not a valid Go identifier", m.Package)
	}
	if len(m.Notes) == 0 {
		return fmt.Errorf("manifest: no notes declared")
	}

	switch m.Endian {
	case "", "native", "little", "big":
	default:
		return fmt.Errorf("manifest: unknown endian %q", m.Endian)
	}

	seen := make(map[string]struct{}, len(m.Notes))
	for i := range m.Notes {
		e := &m.Notes[i]
		if !isIdentifier(e.Symbol) {
			return fmt.Errorf("entry %d: symbol %q is not a valid Go identifier", i, e.Symbol)
		}
		if _, dup := seen[e.Symbol]; dup {
			return fmt.Errorf("entry %d: duplicate symbol %q", i, e.Symbol)
		}
		seen[e.Symbol] = struct{}{}

		if e.Vendor != "" && e.Type != 0 {
			return fmt.Errorf("entry %q: type and vendor are mutually exclusive", e.Symbol)
		}
		if e.Vendor != "" && len(e.Vendor) > 4 {
			return fmt.Errorf("entry %q: vendor tag %q exceeds 4 characters", e.Symbol, e.Vendor)
		}
		if e.Capacity < 0 {
			return fmt.Errorf("entry %q: negative capacity %d", e.Symbol, e.Capacity)
		}
		if e.Desc.forms() > 1 {
			return fmt.Errorf("entry %q: multiple descriptor forms set", e.Symbol)
		}
		if e.Desc.Hex != "" {
			if _, err := hex.DecodeString(e.Desc.Hex); err != nil {
				return fmt.Errorf("entry %q: invalid hex descriptor: %w", e.Symbol, err)
			}
		}
	}

	return nil
}

// SectionName returns the target section, applying the default.
func (m *Manifest) SectionName() string {
	if m.Section == "" {
		return section.DefaultName
	}

	return m.Section
}

// Engine returns the endian engine the manifest selects.
func (m *Manifest) Engine() endian.EndianEngine {
	switch m.Endian {
	case "little":
		return endian.GetLittleEndianEngine()
	case "big":
		return endian.GetBigEndianEngine()
	default:
		return endian.GetNativeEngine()
	}
}

// Hash returns the xxHash64 of the manifest source, used as the staleness
// stamp in generated files.
func (m *Manifest) Hash() uint64 {
	return hash.Sum64(m.raw)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}
