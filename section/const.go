package section

// Conventional section names.
const (
	// DefaultName is the section notes are placed in when the caller does
	// not pick one.
	DefaultName = ".note"

	GNUBuildIDSection   = ".note.gnu.build-id" // NT_GNU_BUILD_ID notes
	GNUPropertySection  = ".note.gnu.property" // NT_GNU_PROPERTY_TYPE_0 notes
	GNUABITagSection    = ".note.ABI-tag"      // NT_GNU_ABI_TAG notes
	GoBuildIDSection    = ".note.go.buildid"   // Go toolchain build ID notes
	PackageNotesSection = ".note.package"      // distribution package metadata (systemd spec)
)

// Well-known note owner names.
const (
	NameGNU     = "GNU"
	NameGo      = "Go"
	NameCore    = "CORE"
	NameLinux   = "LINUX"
	NameFreeBSD = "FreeBSD"
	NameStapSDT = "stapsdt"
	NamePackage = "FDO" // systemd package metadata owner
)

// Note type tags for the "GNU" owner.
const (
	TypeGNUABITag        = 1 // NT_GNU_ABI_TAG
	TypeGNUHwcap         = 2 // NT_GNU_HWCAP
	TypeGNUBuildID       = 3 // NT_GNU_BUILD_ID
	TypeGNUGoldVersion   = 4 // NT_GNU_GOLD_VERSION
	TypeGNUPropertyType0 = 5 // NT_GNU_PROPERTY_TYPE_0
)

// Note type tags for the "Go" owner.
const (
	TypeGoBuildID = 4 // note type of the Go toolchain's build ID
)

// Core file note type tags (owner "CORE" / "LINUX").
const (
	TypeCorePrStatus = 1 // NT_PRSTATUS
	TypeCorePrPsInfo = 3 // NT_PRPSINFO
	TypeCoreAuxv     = 6 // NT_AUXV
)

// Header layout constants (duplicated from the note package for callers
// that only deal in section images).
const (
	NoteHeaderSize = 12 // namesz + descsz + type
	NoteAlign      = 4  // record alignment within a section
)

// ELF compression header constants.
const (
	Chdr64Size = 24 // Elf64_Chdr: ch_type, ch_reserved, ch_size, ch_addralign
	Chdr32Size = 12 // Elf32_Chdr: ch_type, ch_size, ch_addralign

	// Standard ch_type values.
	CompressZlib = 1 // ELFCOMPRESS_ZLIB
	CompressZstd = 2 // ELFCOMPRESS_ZSTD

	// OS-specific ch_type range; the LZ4 and S2 codecs live here.
	CompressLoOS = 0x60000000 // ELFCOMPRESS_LOOS
	CompressHiOS = 0x6FFFFFFF // ELFCOMPRESS_HIOS

	CompressLZ4 = CompressLoOS + 0x101 // vendor: LZ4 block compression
	CompressS2  = CompressLoOS + 0x102 // vendor: S2 compression
)

// VendorType packs up to four ASCII characters into a note type tag, a
// common convention for tool-specific notes (e.g. the "DLVE" and "DLVT"
// tags Delve writes into core dumps). Characters beyond the fourth are
// ignored; shorter tags are zero padded in the low bytes.
func VendorType(tag string) uint32 {
	var v uint32
	for i := 0; i < 4 && i < len(tag); i++ {
		v = v<<8 | uint32(tag[i])
	}
	for i := len(tag); i < 4; i++ {
		v <<= 8
	}

	return v
}
