// Package compress provides the compression codecs used for compressed
// ELF section images (SHF_COMPRESSED).
//
// The ELF specification defines zlib (ELFCOMPRESS_ZLIB) and Zstandard
// (ELFCOMPRESS_ZSTD) section compression; LZ4 and S2 are offered in the
// OS-specific ch_type range for toolchains that control both ends.
//
// Codecs operate on whole section images held in memory. Note sections are
// small, so the codecs favor simplicity and predictable allocation over
// streaming.
//
// Use format.CompressionType with CreateCodec or GetCodec to obtain a codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(image)
package compress
