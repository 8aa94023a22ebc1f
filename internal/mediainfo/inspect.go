package mediainfo

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"mediapeek/internal/logging"
	"mediapeek/internal/services"
)

const defaultBinary = "mediainfo"

// Invoker runs the external inspection binary against local files.
type Invoker struct {
	binary string
	logger *slog.Logger
}

// InvokerOption customizes an Invoker.
type InvokerOption func(*Invoker)

// WithLogger attaches a logger for tool diagnostics.
func WithLogger(logger *slog.Logger) InvokerOption {
	return func(inv *Invoker) {
		if logger != nil {
			inv.logger = logging.NewComponentLogger(logger, "mediainfo")
		}
	}
}

// NewInvoker builds an Invoker for the given binary. An empty binary falls
// back to "mediainfo" on PATH.
func NewInvoker(binary string, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		binary: strings.TrimSpace(binary),
		logger: logging.NewNop(),
	}
	if inv.binary == "" {
		inv.binary = defaultBinary
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Binary returns the configured tool command.
func (inv *Invoker) Binary() string {
	return inv.binary
}

// Inspect executes the inspection tool against path and returns its
// combined output.
//
// A non-zero exit that still produced output is logged and the output
// returned with a nil error: truncated probe windows routinely make the
// tool complain while printing a usable report. Only an empty output
// counts as failure.
func (inv *Invoker) Inspect(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", services.Wrap(services.ErrValidation, "mediainfo", "inspect", "empty path", nil)
	}

	cmd := exec.CommandContext(ctx, inv.binary, path)
	output, err := cmd.CombinedOutput()
	text := string(output)
	if err != nil {
		if strings.TrimSpace(text) == "" {
			message := fmt.Sprintf("%s produced no output for %s", inv.binary, path)
			return "", services.Wrap(services.ErrExternalTool, "mediainfo", "inspect", message, err)
		}
		inv.logger.Warn("inspection tool exited non-zero, keeping partial report",
			logging.String("binary", inv.binary),
			logging.String("path", path),
			logging.Error(err))
	}
	return text, nil
}
