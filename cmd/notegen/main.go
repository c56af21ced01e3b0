// Command notegen generates Go source declaring constant ELF note records
// from a YAML manifest.
//
// Usage:
//
//	notegen -manifest notes.yaml -out buildinfo_notes.go
//	notegen -manifest notes.yaml -out buildinfo_notes.go -check
//
// With -check the command verifies that the output file matches the
// manifest and exits non-zero when it is stale, for use in CI. With
// -strict any entry whose capacity truncates its name is an error instead
// of a warning.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/elfnote/notegen"
)

func main() {
	manifestPath := flag.String("manifest", "notes.yaml", "path to the note manifest")
	outPath := flag.String("out", "", "output file (default <package>_notes.go)")
	check := flag.Bool("check", false, "verify the output is up to date, exit non-zero if stale")
	strict := flag.Bool("strict", false, "treat name truncation as an error")
	flag.Parse()

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	if err := run(logger, *manifestPath, *outPath, *check, *strict); err != nil {
		logger.Fatal("notegen failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, manifestPath, outPath string, check, strict bool) error {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return err
	}

	m, err := notegen.Parse(raw)
	if err != nil {
		return err
	}

	if strict {
		for i := range m.Notes {
			if m.Notes[i].Truncates() {
				return fmt.Errorf("entry %q: capacity %d truncates name %q",
					m.Notes[i].Symbol, m.Notes[i].ResolveCapacity(), m.Notes[i].Name)
			}
		}
	}

	if outPath == "" {
		outPath = m.Package + "_notes.go"
	}

	existing, err := os.ReadFile(outPath)
	if err == nil && notegen.UpToDate(existing, m) {
		logger.Info("output up to date", zap.String("out", outPath))
		return nil
	}

	if check {
		return fmt.Errorf("%s is stale, rerun notegen", outPath)
	}

	src, err := notegen.NewGenerator(m, logger).Generate()
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return err
	}

	logger.Info("generated",
		zap.String("out", outPath),
		zap.Int("records", len(m.Notes)),
		zap.String("section", m.SectionName()),
	)

	return nil
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return logger
}
