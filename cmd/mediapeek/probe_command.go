package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediapeek/internal/mediainfo"
	"mediapeek/internal/probe"
	"mediapeek/internal/render"
	"mediapeek/internal/source"
)

type probeResult struct {
	Source           string                 `json:"source"`
	Name             string                 `json:"name"`
	SizeBytes        int64                  `json:"size_bytes"`
	Strategy         string                 `json:"strategy"`
	OriginalLanguage string                 `json:"original_language,omitempty"`
	Tracks           []mediainfo.AudioTrack `json:"tracks,omitempty"`
	Chunks           []string               `json:"chunks"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var displayName string
	var skipJournal bool

	cmd := &cobra.Command{
		Use:   "probe <url|file>",
		Short: "Probe a media object and print its display report",
		Long: `Probe fetches just enough of a media object to read its metadata and
prints the HTML-formatted report the renderer produces. Remote objects are
probed through bounded header/tail windows; local files are inspected in
place. Use --json for a machine-readable outcome including the display
chunks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			loc, err := source.Detect(args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.commandLogger(cfg)
			if err != nil {
				return err
			}

			engine := newProbeEngine(cfg, logger)
			outcome, err := engine.Run(cmd.Context(), loc)
			if err != nil {
				if errors.Is(err, probe.ErrNoMetadata) {
					return probe.ErrNoMetadata
				}
				return err
			}

			name := strings.TrimSpace(displayName)
			if name == "" {
				name = loc.Name()
			}
			if !skipJournal {
				recordProbe(cmd.Context(), cfg, logger, loc, name, outcome)
			}

			chunks := render.Report(outcome, name, cfg.Render.ChunkLimit)
			if jsonOut {
				return writeJSON(cmd, probeResult{
					Source:           locatorSource(loc),
					Name:             name,
					SizeBytes:        outcome.SizeBytes,
					Strategy:         string(outcome.Strategy),
					OriginalLanguage: outcome.OriginalLanguage(),
					Tracks:           outcome.Tracks,
					Chunks:           chunks,
				})
			}

			out := cmd.OutOrStdout()
			for _, chunk := range chunks {
				fmt.Fprint(out, chunk)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the probe outcome as JSON")
	cmd.Flags().StringVar(&displayName, "name", "", "Override the display name in the report header")
	cmd.Flags().BoolVar(&skipJournal, "no-journal", false, "Skip recording this probe in the history journal")
	return cmd
}
