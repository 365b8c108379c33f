package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellprof/codec"
	"github.com/katalvlaran/cellprof/segmented"
)

// stdio is the path that stands for stdin.
const stdio = "-"

// defaultFormat is the configured format; setup has already validated it.
func (a *app) defaultFormat() codec.Format {
	f, err := codec.ParseFormat(a.cfg.Format)
	if err != nil {
		return codec.JSON
	}

	return f
}

// readDocument returns the raw bytes at path and the format to decode them
// with. Files are typed by extension, stdin by the configured format.
func (a *app) readDocument(cmd *cobra.Command, path string) ([]byte, codec.Format, error) {
	if path == stdio {
		buf, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}

		return buf, a.defaultFormat(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	return data, codec.FormatOf(path, a.defaultFormat()), nil
}

// load decodes the segmented profile at path.
func (a *app) load(cmd *cobra.Command, path string) (*segmented.Profile, error) {
	data, f, err := a.readDocument(cmd, path)
	if err != nil {
		return nil, err
	}
	sp, err := codec.Unmarshal(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("loaded profile", "path", path, "format", f, "size", sp.Size(), "segments", sp.SegmentCount())

	return sp, nil
}

// emit writes sp to --out, typed by its extension, or to stdout in the
// configured format.
func (a *app) emit(cmd *cobra.Command, sp *segmented.Profile) error {
	if a.out == "" {
		return codec.Write(cmd.OutOrStdout(), sp, a.defaultFormat())
	}

	f := codec.FormatOf(a.out, a.defaultFormat())
	if err := codec.WriteFile(a.out, sp, f); err != nil {
		return err
	}
	a.log.Info("wrote profile", "path", a.out, "format", f, "segments", sp.SegmentCount())

	return nil
}
