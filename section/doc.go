// Package section assembles note records into complete section images and
// defines the well-known names, type tags and layout constants of ELF note
// sections.
//
// # Section Images
//
// A note section is a sequence of records, each starting on a 4-byte
// boundary:
//
//	┌──────────────────────────────────────────────┐
//	│ Record 0: header(12) + name + pad + desc     │
//	├──────────────────────────────────────────────┤
//	│ Padding to 4-byte boundary (0-3 bytes)       │
//	├──────────────────────────────────────────────┤
//	│ Record 1: ...                                │
//	├──────────────────────────────────────────────┤
//	│ ...                                          │
//	└──────────────────────────────────────────────┘
//
// Builder produces such images through simple sequential emission. The
// order in which records are declared fixes their byte order in the image
// but carries no semantics: each record stands alone, and any ordering
// requirement when records are read back (sorting by type tag, say) belongs
// to the consumer.
//
// # Compressed Images
//
// CompressImage and DecompressImage wrap an image with the ELF compression
// header (Elf32_Chdr/Elf64_Chdr) for placement in a SHF_COMPRESSED section,
// using the codecs from the compress package.
//
// # Placement
//
// Emitting the bytes into an output section (objcopy --add-section, linker
// scripts, assembler directives) is the build toolchain's business; this
// package only guarantees that the produced image parses as valid notes.
package section
