package format

type (
	CompressionType uint8
	Class           uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed section image.
	CompressionZlib CompressionType = 0x2 // CompressionZlib represents zlib (ELFCOMPRESS_ZLIB) compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard (ELFCOMPRESS_ZSTD) compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression (vendor ch_type range).
	CompressionS2   CompressionType = 0x5 // CompressionS2 represents S2 compression (vendor ch_type range).

	Class32 Class = 0x1 // Class32 selects the ELF32 data model (Elf32_Chdr).
	Class64 Class = 0x2 // Class64 selects the ELF64 data model (Elf64_Chdr).
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return "Unknown"
	}
}
