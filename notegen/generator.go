package notegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/elfnote/note"
	"github.com/arloliu/elfnote/section"
)

// hashStampPrefix precedes the manifest hash in generated files. UpToDate
// looks for it to decide whether a file needs rewriting.
const hashStampPrefix = "// Source manifest hash: "

// bytesPerLine is the number of descriptor bytes emitted per source line.
const bytesPerLine = 12

// Generator emits a Go source file from a validated manifest.
type Generator struct {
	manifest *Manifest
	logger   *zap.Logger
}

// NewGenerator creates a Generator. A nil logger disables diagnostics.
func NewGenerator(m *Manifest, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		manifest: m,
		logger:   logger,
	}
}

// Generate renders the manifest into gofmt-formatted Go source.
//
// Entries whose explicit capacity truncates their name are still generated,
// faithfully to the record format's silent-truncation semantics, but each
// one is reported through the logger so build pipelines can fail on the
// warning if they want strictness.
func (g *Generator) Generate() ([]byte, error) {
	m := g.manifest
	engine := m.Engine()

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by notegen. DO NOT EDIT.\n//\n%s%016x\n\n", hashStampPrefix, m.Hash())
	fmt.Fprintf(&sb, "package %s\n\n", m.Package)

	fmt.Fprintf(&sb, "// SectionName is the target section for the records in this file.\n")
	fmt.Fprintf(&sb, "const SectionName = %q\n\n", m.SectionName())

	builder, err := section.NewBuilder(
		section.WithEngine(engine),
		section.WithSectionName(m.SectionName()),
	)
	if err != nil {
		return nil, err
	}

	for i := range m.Notes {
		e := &m.Notes[i]

		desc, err := e.DescBytes(engine)
		if err != nil {
			return nil, err
		}

		capacity := e.ResolveCapacity()
		if e.Truncates() {
			g.logger.Warn("note name truncated",
				zap.String("symbol", e.Symbol),
				zap.String("name", e.Name),
				zap.Int("capacity", capacity),
			)
		}

		n := note.NewWithCapacity(e.Name, capacity, e.ResolveType(), desc)
		builder.Add(n)

		fmt.Fprintf(&sb, "// %s is the %q note record, type %#x (%d bytes).\n", e.Symbol, e.Name, n.Type, n.Size())
		fmt.Fprintf(&sb, "var %s = []byte{\n", e.Symbol)
		writeByteLines(&sb, n.Bytes(engine))
		sb.WriteString("}\n\n")
	}

	sb.WriteString("// SectionImage returns a copy of the complete section image: every\n")
	sb.WriteString("// record above emitted sequentially, each aligned to a 4-byte boundary.\n")
	sb.WriteString("func SectionImage() []byte {\n")
	sb.WriteString("\timg := make([]byte, len(sectionImage))\n")
	sb.WriteString("\tcopy(img, sectionImage)\n")
	sb.WriteString("\treturn img\n")
	sb.WriteString("}\n\n")

	sb.WriteString("var sectionImage = []byte{\n")
	writeByteLines(&sb, builder.Finish())
	sb.WriteString("}\n")

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		// A formatting failure means the generator itself emitted bad code.
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}

// UpToDate reports whether existing generated output carries the hash stamp
// of the given manifest, meaning regeneration would be a no-op.
func UpToDate(existing []byte, m *Manifest) bool {
	stamp := fmt.Sprintf("%s%016x", hashStampPrefix, m.Hash())
	return bytes.Contains(existing, []byte(stamp))
}

func writeByteLines(sb *strings.Builder, data []byte) {
	for i, b := range data {
		if i%bytesPerLine == 0 {
			sb.WriteString("\t")
		}
		fmt.Fprintf(sb, "0x%02x,", b)
		if i%bytesPerLine == bytesPerLine-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	if len(data)%bytesPerLine != 0 {
		sb.WriteString("\n")
	}
}
