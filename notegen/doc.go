// Package notegen generates Go source files declaring constant ELF note
// records from a YAML manifest.
//
// Go has no per-variable section placement, so the "declare N named static
// records against one section" pattern becomes a build-time step: notegen
// expands each manifest entry through the note package and emits one Go
// variable per record plus the target section name, leaving placement of
// the bytes (objcopy, linker script, embedding) to the consumer's build.
//
// # Manifest
//
//	package: buildinfo
//	section: .note.example
//	endian: little
//	notes:
//	  - symbol: BuildTag
//	    name: example
//	    type: 1
//	    desc:
//	      uint32: 7
//	  - symbol: BuildHash
//	    name: example
//	    type: 2
//	    desc:
//	      hex: "deadbeef"
//
// Each entry needs a Go identifier (symbol), a note name, a type tag
// (numeric type or a four-character vendor tag) and exactly one descriptor
// form: uint32, uint64, string, bytes or hex. capacity overrides the name
// buffer size; the default len(name)+1 never truncates, and an explicit
// smaller capacity makes the generator log a truncation warning so strict
// builds can treat it as a failure.
//
// Generated files carry an xxHash64 stamp of the manifest, letting the
// generator skip rewriting (and -check verify freshness) when nothing
// changed.
package notegen
