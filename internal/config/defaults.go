package config

const (
	defaultWorkDir               = "~/.local/share/mediapeek"
	defaultLogDir                = "~/.local/share/mediapeek/logs"
	defaultMediainfoBinary       = "mediainfo"
	defaultHeaderBudget          = "48MiB"
	defaultTailBudget            = "48MiB"
	defaultFullDownloadThreshold = "120MiB"
	defaultRequestTimeout        = 120
	defaultResolveTimeout        = 20
	defaultRetryAttempts         = 3
	defaultRetryDelay            = 2
	defaultUserAgent             = "mediapeek/dev"
	defaultChunkLimit            = 3500
	defaultJournalPath           = "~/.local/share/mediapeek/journal.db"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir: defaultWorkDir,
			LogDir:  defaultLogDir,
		},
		Probe: Probe{
			MediainfoBinary:       defaultMediainfoBinary,
			HeaderBudget:          defaultHeaderBudget,
			TailBudget:            defaultTailBudget,
			FullDownloadThreshold: defaultFullDownloadThreshold,
			RequestTimeout:        defaultRequestTimeout,
			ResolveTimeout:        defaultResolveTimeout,
			RetryAttempts:         defaultRetryAttempts,
			RetryDelay:            defaultRetryDelay,
			UserAgent:             defaultUserAgent,
		},
		Render: Render{
			ChunkLimit: defaultChunkLimit,
		},
		Journal: Journal{
			Enabled: true,
			Path:    defaultJournalPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
