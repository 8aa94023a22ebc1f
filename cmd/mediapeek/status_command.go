package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediapeek/internal/preflight"
	"mediapeek/internal/textutil"
)

type statusReport struct {
	ConfigPath   string        `json:"config_path"`
	ConfigExists bool          `json:"config_exists"`
	WorkDir      string        `json:"workdir"`
	LogDir       string        `json:"log_dir"`
	Binary       string        `json:"mediainfo_binary"`
	HeaderBudget string        `json:"header_budget"`
	TailBudget   string        `json:"tail_budget"`
	Journal      string        `json:"journal"`
	Checks       []checkResult `json:"checks"`
}

type checkResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

func checkResults(results []preflight.Result) []checkResult {
	converted := make([]checkResult, 0, len(results))
	for _, result := range results {
		converted = append(converted, checkResult(result))
	}
	return converted
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show configuration and preflight readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			checks := preflight.RunAll(cfg)

			journalDetail := textutil.Ternary(cfg.Journal.Enabled, cfg.Journal.Path, "disabled")

			if jsonOut {
				return writeJSON(cmd, statusReport{
					ConfigPath:   ctx.configPath,
					ConfigExists: ctx.configExists,
					WorkDir:      cfg.WorkDir(),
					LogDir:       cfg.LogDir(),
					Binary:       cfg.MediainfoBinary(),
					HeaderBudget: textutil.FormatBytes(cfg.HeaderBudgetBytes()),
					TailBudget:   textutil.FormatBytes(cfg.TailBudgetBytes()),
					Journal:      journalDetail,
					Checks:       checkResults(checks),
				})
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(stdout, line)
			}
			configDetail := ctx.configPath
			if !ctx.configExists {
				configDetail += " (not found, defaults in effect)"
			}
			fmt.Fprintln(stdout, renderStatusLine("Config file", statusInfo, configDetail, colorize))
			fmt.Fprintln(stdout, renderStatusLine("Workspace", statusInfo, cfg.WorkDir(), colorize))
			fmt.Fprintln(stdout, renderStatusLine("MediaInfo binary", statusInfo, cfg.MediainfoBinary(), colorize))
			fmt.Fprintln(stdout, renderStatusLine("Header budget", statusInfo, textutil.FormatBytes(cfg.HeaderBudgetBytes()), colorize))
			fmt.Fprintln(stdout, renderStatusLine("Tail budget", statusInfo, textutil.FormatBytes(cfg.TailBudgetBytes()), colorize))
			if cfg.Journal.Enabled {
				fmt.Fprintln(stdout, renderStatusLine("Journal", statusInfo, cfg.Journal.Path, colorize))
			} else {
				fmt.Fprintln(stdout, renderStatusLine("Journal", statusWarn, "disabled", colorize))
			}

			fmt.Fprintln(stdout)
			for _, line := range renderSectionHeader("Preflight Checks", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, check := range checks {
				fmt.Fprintln(stdout, renderStatusLine(check.Name, resultKind(check), check.Detail, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit status as JSON")
	return cmd
}
