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

func newSpanCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span FILE START END",
		Short: "Resolve a byte range to per-line spans",
		Long: `Resolve the byte range [START, END] in FILE to single-line spans.

A range that crosses line breaks produces one span per covered line;
joining the covered text with newlines reconstructs the exact range.
START must not exceed END.

Examples:
  linepos span main.go 120 190
  linepos span --format json notes.md 5 10`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpan(cmd, args, opts)
		},
	}

	return cmd
}

// jsonSpans is the JSON shape emitted by span.
type jsonSpans struct {
	Path     string         `json:"path"`
	Start    int            `json:"start"`
	End      int            `json:"end"`
	Language string         `json:"language"`
	Spans    []linepos.Span `json:"spans"`
}

func runSpan(cmd *cobra.Command, args []string, opts *rootOptions) error {
	path := args[0]

	start, err := strconv.Atoi(args[1])
	if err != nil || start < 0 {
		return fmt.Errorf("%w: start %q must be a non-negative integer", ErrInvalidArgument, args[1])
	}
	end, err := strconv.Atoi(args[2])
	if err != nil || end < 0 {
		return fmt.Errorf("%w: end %q must be a non-negative integer", ErrInvalidArgument, args[2])
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
	logger.Debug("resolving region",
		logging.FieldPath, path,
		logging.FieldStart, start,
		logging.FieldEnd, end,
	)

	text := string(content)
	ix := linepos.NewIndex(text)

	spans, err := ix.Spans(start, end)
	if err != nil {
		return err
	}

	language := langdetect.DetectFile(path, content)

	if cfg.Format == config.FormatJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(jsonSpans{
			Path:     path,
			Start:    start,
			End:      end,
			Language: language,
			Spans:    spans,
		})
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout()))
	out := cmd.OutOrStdout()

	fmt.Fprint(out, styles.FormatLocation(path, spans[0].Line, spans[0].StartCol, language))

	if cfg.Context {
		lines := strings.Split(text, "\n")
		for _, sp := range spans {
			fmt.Fprint(out, styles.FormatSpanContext(lines[sp.Line.AsIndex()], sp))
		}
		return nil
	}

	for _, sp := range spans {
		fmt.Fprintf(out, "%s\n", sp)
	}

	return nil
}
