package section

import (
	"fmt"

	"github.com/arloliu/elfnote/compress"
	"github.com/arloliu/elfnote/endian"
	"github.com/arloliu/elfnote/errs"
	"github.com/arloliu/elfnote/format"
)

// Chdr is the ELF compression header that prefixes the payload of a
// SHF_COMPRESSED section.
//
// Elf64_Chdr layout (24 bytes):
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|--------------------------------
//	0-3    | ch_type      | uint32 | Compression algorithm
//	4-7    | ch_reserved  | uint32 | Must be zero
//	8-15   | ch_size      | uint64 | Uncompressed section size
//	16-23  | ch_addralign | uint64 | Uncompressed section alignment
//
// Elf32_Chdr layout (12 bytes): ch_type, ch_size and ch_addralign as
// uint32, with no reserved field.
type Chdr struct {
	Type      uint32
	Size      uint64
	AddrAlign uint64
}

// chType maps a compression type to its ch_type value.
func chType(c format.CompressionType) (uint32, error) {
	switch c {
	case format.CompressionZlib:
		return CompressZlib, nil
	case format.CompressionZstd:
		return CompressZstd, nil
	case format.CompressionLZ4:
		return CompressLZ4, nil
	case format.CompressionS2:
		return CompressS2, nil
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, c)
	}
}

// compressionOf maps a ch_type value back to its compression type.
func compressionOf(chType uint32) (format.CompressionType, error) {
	switch chType {
	case CompressZlib:
		return format.CompressionZlib, nil
	case CompressZstd:
		return format.CompressionZstd, nil
	case CompressLZ4:
		return format.CompressionLZ4, nil
	case CompressS2:
		return format.CompressionS2, nil
	default:
		return 0, fmt.Errorf("%w: ch_type %#x", errs.ErrUnknownCompression, chType)
	}
}

// headerSize returns the Chdr size for the given class.
func headerSize(class format.Class) (int, error) {
	switch class {
	case format.Class32:
		return Chdr32Size, nil
	case format.Class64:
		return Chdr64Size, nil
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidClass, class)
	}
}

// AppendTo appends the serialized header to buf for the given class.
func (h Chdr) AppendTo(buf []byte, class format.Class, engine endian.EndianEngine) ([]byte, error) {
	switch class {
	case format.Class32:
		buf = engine.AppendUint32(buf, h.Type)
		buf = engine.AppendUint32(buf, uint32(h.Size))      //nolint:gosec
		buf = engine.AppendUint32(buf, uint32(h.AddrAlign)) //nolint:gosec

		return buf, nil
	case format.Class64:
		buf = engine.AppendUint32(buf, h.Type)
		buf = engine.AppendUint32(buf, 0) // ch_reserved
		buf = engine.AppendUint64(buf, h.Size)
		buf = engine.AppendUint64(buf, h.AddrAlign)

		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidClass, class)
	}
}

// ParseChdr parses a compression header of the given class from data.
func ParseChdr(data []byte, class format.Class, engine endian.EndianEngine) (Chdr, error) {
	size, err := headerSize(class)
	if err != nil {
		return Chdr{}, err
	}
	if len(data) < size {
		return Chdr{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidChdr, len(data))
	}

	if class == format.Class32 {
		return Chdr{
			Type:      engine.Uint32(data[0:4]),
			Size:      uint64(engine.Uint32(data[4:8])),
			AddrAlign: uint64(engine.Uint32(data[8:12])),
		}, nil
	}

	return Chdr{
		Type:      engine.Uint32(data[0:4]),
		Size:      engine.Uint64(data[8:16]),
		AddrAlign: engine.Uint64(data[16:24]),
	}, nil
}

// CompressImage wraps a section image for placement in a SHF_COMPRESSED
// section: a Chdr for the given class followed by the compressed payload.
//
// format.CompressionNone returns a copy of the image unchanged, with no
// header, since an uncompressed section carries no Chdr.
func CompressImage(image []byte, ctype format.CompressionType, class format.Class, engine endian.EndianEngine) ([]byte, error) {
	if ctype == format.CompressionNone {
		out := make([]byte, len(image))
		copy(out, image)

		return out, nil
	}

	ct, err := chType(ctype)
	if err != nil {
		return nil, err
	}
	size, err := headerSize(class)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(ctype)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(image)
	if err != nil {
		return nil, fmt.Errorf("compress section image: %w", err)
	}

	hdr := Chdr{
		Type:      ct,
		Size:      uint64(len(image)), //nolint:gosec
		AddrAlign: NoteAlign,
	}

	buf := make([]byte, 0, size+len(payload))
	buf, err = hdr.AppendTo(buf, class, engine)
	if err != nil {
		return nil, err
	}

	return append(buf, payload...), nil
}

// DecompressImage reverses CompressImage: it parses the Chdr, decompresses
// the payload with the codec the header names, and verifies the size
// against ch_size.
func DecompressImage(data []byte, class format.Class, engine endian.EndianEngine) ([]byte, error) {
	hdr, err := ParseChdr(data, class, engine)
	if err != nil {
		return nil, err
	}

	ctype, err := compressionOf(hdr.Type)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(ctype)
	if err != nil {
		return nil, err
	}

	size, _ := headerSize(class)
	image, err := codec.Decompress(data[size:])
	if err != nil {
		return nil, fmt.Errorf("decompress section image: %w", err)
	}

	if uint64(len(image)) != hdr.Size {
		return nil, fmt.Errorf("%w: ch_size %d, got %d bytes", errs.ErrSizeMismatch, hdr.Size, len(image))
	}

	return image, nil
}
