package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mediapeek/internal/logging"
	"mediapeek/internal/workdir"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Purge leftover scratch sessions from the workspace",
		Long: `Clean removes scratch session directories that a crashed or killed probe
left behind. Sessions sweep themselves on normal exit, so a healthy
workspace is already empty. The purge refuses to run while another
mediapeek process holds a session open.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.commandLogger(cfg)
			if err != nil {
				return err
			}

			manager := workdir.NewManager(cfg.WorkDir(),
				workdir.WithLogger(logging.NewComponentLogger(logger, "workdir")))
			removed, err := manager.Purge()
			if err != nil {
				if errors.Is(err, workdir.ErrBusy) {
					return fmt.Errorf("workspace %s is in use by another probe session; retry after it finishes", cfg.WorkDir())
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d scratch sessions from %s\n", removed, manager.SessionsDir())
			return nil
		},
	}
}
