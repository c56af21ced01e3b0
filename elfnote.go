// Package elfnote constructs binary records in the ELF note format, the
// header-plus-payload structure ELF binaries use to carry auxiliary
// metadata such as build IDs, ABI tags and tool-specific markers.
//
// The package produces byte-exact note records (namesz, descsz, type,
// NUL-padded name, 4-byte-aligned descriptor) and section images built from
// them, in the target platform's native byte order by default. It does not
// place the bytes into a binary: that is the job of the build toolchain
// (objcopy, linker scripts, or the notegen code generator in this module).
//
// # Basic Usage
//
// Creating a single record:
//
//	import "github.com/arloliu/elfnote"
//
//	n := elfnote.New("example", 1, []byte{1, 2, 3, 4})
//	data := elfnote.Marshal(n) // native byte order
//
// Building a section image with several records:
//
//	image, _ := elfnote.BuildSection(".note.example",
//	    elfnote.New("example", 1, []byte{1, 2, 3, 4}),
//	    elfnote.New("example", 2, elfnote.DescUint64(7)),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the note and
// section packages, simplifying the most common use cases. For explicit
// byte order, name capacities, descriptor assembly or compressed section
// images, use the note, section and compress packages directly.
package elfnote

import (
	"github.com/arloliu/elfnote/endian"
	"github.com/arloliu/elfnote/note"
	"github.com/arloliu/elfnote/section"
)

// New creates a note record with name capacity len(name)+1, so the name is
// always stored whole with its NUL terminator.
func New(name string, typ uint32, desc []byte) *note.Note {
	return note.New(name, typ, desc)
}

// Marshal serializes a record in the host's native byte order, the order
// ELF tooling expects for notes consumed on the same platform.
func Marshal(n *note.Note) []byte {
	return n.Bytes(endian.GetNativeEngine())
}

// DescUint32 encodes a 32-bit descriptor in native byte order.
func DescUint32(v uint32) []byte {
	return note.DescUint32(endian.GetNativeEngine(), v)
}

// DescUint64 encodes a 64-bit descriptor in native byte order.
func DescUint64(v uint64) []byte {
	return note.DescUint64(endian.GetNativeEngine(), v)
}

// BuildSection emits the given records sequentially into a section image
// targeting sectionName, in native byte order. An empty sectionName selects
// the default ".note".
func BuildSection(sectionName string, notes ...*note.Note) ([]byte, error) {
	opts := []section.BuilderOption{}
	if sectionName != "" {
		opts = append(opts, section.WithSectionName(sectionName))
	}

	b, err := section.NewBuilder(opts...)
	if err != nil {
		return nil, err
	}

	for _, n := range notes {
		b.Add(n)
	}

	return b.Finish(), nil
}
