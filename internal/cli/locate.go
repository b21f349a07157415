package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linepos/internal/logging"
	"github.com/yaklabco/linepos/internal/ui/pretty"
	"github.com/yaklabco/linepos/pkg/config"
	"github.com/yaklabco/linepos/pkg/fsutil"
	"github.com/yaklabco/linepos/pkg/langdetect"
	"github.com/yaklabco/linepos/pkg/linepos"
)

func newLocateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate FILE OFFSET",
		Short: "Resolve a byte offset to a line and column",
		Long: `Resolve a byte offset in FILE to its line and column.

The reported line is one-indexed and the column is a zero-indexed byte
offset from the start of that line. Offsets up to and including the end
of the last line are valid.

Examples:
  linepos locate main.go 1042
  linepos locate --format json src/lib.rs 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args, opts)
		},
	}

	return cmd
}

// jsonPosition is the JSON shape emitted by locate.
type jsonPosition struct {
	Path     string `json:"path"`
	Offset   int    `json:"offset"`
	Line     int    `json:"line"`
	Display  string `json:"display"`
	Column   int    `json:"column"`
	Language string `json:"language"`
}

func runLocate(cmd *cobra.Command, args []string, opts *rootOptions) error {
	path := args[0]

	offset, err := strconv.Atoi(args[1])
	if err != nil || offset < 0 {
		return fmt.Errorf("%w: offset %q must be a non-negative integer", ErrInvalidArgument, args[1])
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	content, err := fsutil.ReadFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	logger.Debug("locating offset",
		logging.FieldPath, path,
		logging.FieldOffset, offset,
		logging.FieldSize, len(content),
	)

	text := string(content)
	ix := linepos.NewIndex(text)

	line, col, err := ix.Position(offset)
	if err != nil {
		return err
	}

	language := langdetect.DetectFile(path, content)

	if cfg.Format == config.FormatJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(jsonPosition{
			Path:     path,
			Offset:   offset,
			Line:     line.AsIndex(),
			Display:  line.Display(),
			Column:   col,
			Language: language,
		})
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout()))
	out := cmd.OutOrStdout()

	fmt.Fprint(out, styles.FormatLocation(path, line, col, language))
	if cfg.Context {
		lineText := strings.Split(text, "\n")[line.AsIndex()]
		fmt.Fprint(out, styles.FormatSourceContext(lineText, col))
	}

	return nil
}
