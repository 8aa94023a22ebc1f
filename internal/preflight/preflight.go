package preflight

import (
	"mediapeek/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the preflight checks for the given config: the
// inspection binary, the workspace and log directories, and scratch head
// room for a worst-case session (header, tail, and concatenated windows).
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	required := 2 * (cfg.HeaderBudgetBytes() + cfg.TailBudgetBytes())
	return []Result{
		CheckBinary("MediaInfo", cfg.MediainfoBinary()),
		CheckDirectoryAccess("Workspace directory", cfg.WorkDir()),
		CheckDirectoryAccess("Log directory", cfg.LogDir()),
		CheckFreeSpace("Scratch free space", cfg.WorkDir(), required),
	}
}
