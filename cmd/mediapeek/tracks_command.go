package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediapeek/internal/mediainfo"
	"mediapeek/internal/probe"
	"mediapeek/internal/render"
	"mediapeek/internal/source"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tracks <url|file>",
		Short: "List the audio tracks of a media object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := strings.ToLower(strings.TrimSpace(format))
			switch mode {
			case "", "table", "caption", "blockquote", "json":
			default:
				return fmt.Errorf("unknown format %q (expected table, caption, blockquote, or json)", format)
			}

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

			out := cmd.OutOrStdout()
			switch mode {
			case "", "table":
				if len(outcome.Tracks) == 0 {
					fmt.Fprintln(out, "No audio tracks detected")
					return nil
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Language", "Codec", "Channels", "Bitrate"},
					buildTrackRows(outcome.Tracks),
					0,
				))
				if original := outcome.OriginalLanguage(); original != "" {
					fmt.Fprintf(out, "Original language: %s\n", displayLanguage(original))
				}
			case "caption":
				if caption := render.AudioCaption(outcome.Tracks); caption != "" {
					fmt.Fprintln(out, caption)
				} else {
					fmt.Fprintln(out, "No audio tracks detected")
				}
			case "blockquote":
				if quote := render.AudioBlockquote(outcome.Tracks); quote != "" {
					fmt.Fprintln(out, quote)
				} else {
					fmt.Fprintln(out, "No audio tracks detected")
				}
			case "json":
				return writeJSON(cmd, outcome.Tracks)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, caption, blockquote, or json")
	return cmd
}

func buildTrackRows(tracks []mediainfo.AudioTrack) [][]string {
	rows := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		rows = append(rows, []string{
			strconv.Itoa(track.Index),
			displayLanguage(track.Language),
			track.Codec,
			track.Channels,
			track.Bitrate,
		})
	}
	return rows
}

// displayLanguage prettifies a verbatim report language for table output.
// The parser keeps languages exactly as the tool printed them; only the
// CLI table title-cases them.
func displayLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return cases.Title(language.Und).String(strings.ToLower(raw))
}
