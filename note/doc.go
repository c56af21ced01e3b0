// Package note implements construction of ELF note records.
//
// A note record attaches vendor- or tool-defined metadata (build IDs, ABI
// tags, capability flags) to an ELF binary. This package produces records
// that are byte-for-byte compatible with the note entry format defined in
// the ELF specification, ready to be placed in a .note section by a build
// step or emitted through the section package.
//
// # Record Layout
//
// A record with name capacity N and descriptor size D serializes as:
//
//	Bytes          | Field  | Type   | Description
//	---------------|--------|--------|----------------------------------
//	0-3            | namesz | uint32 | Name field size N, incl. the NUL byte
//	4-7            | descsz | uint32 | Descriptor size D
//	8-11           | type   | uint32 | Caller-supplied type tag
//	12..12+N       | name   | bytes  | NUL-padded name, possibly truncated
//	align4(12+N).. | desc   | bytes  | Descriptor, packed, 4-byte aligned
//
// All multi-byte fields use the byte order of the endian engine passed to
// Bytes/AppendTo; ELF tooling expects the target platform's native order
// (endian.GetNativeEngine).
//
// # Name Sizing and Truncation
//
// namesz always reports the declared capacity N, never the string length.
// The common construction path (New) picks N = len(name)+1 so the name is
// stored whole with its NUL terminator. When a caller supplies a smaller
// capacity through NewWithCapacity, the name is silently truncated to the
// first N bytes and is then NOT guaranteed to be NUL-terminated. EncodeName
// exposes the truncation outcome for build steps that want to be strict
// about it.
//
// # Alignment
//
// The format guarantees 4-byte alignment for the descriptor relative to the
// record start, nothing more. Descriptors that need 8- or 16-byte alignment
// must have that satisfied externally (section alignment directives);
// DescOffset reports the descriptor's record-relative offset so callers can
// verify their placement.
package note
