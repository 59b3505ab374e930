package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(*testing.T, *Config)
	}{
		{
			name:  "empty config gets all defaults",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Inputs.ErrorFile != DefaultErrorFile {
					t.Errorf("expected error file %q, got %q", DefaultErrorFile, cfg.Inputs.ErrorFile)
				}
				if cfg.Inputs.TopologyFile != DefaultTopologyFile {
					t.Errorf("expected topology file %q, got %q", DefaultTopologyFile, cfg.Inputs.TopologyFile)
				}
				if cfg.Outputs.ReportFile != DefaultReportFile {
					t.Errorf("expected report file %q, got %q", DefaultReportFile, cfg.Outputs.ReportFile)
				}
				if cfg.Outputs.ParamsFile != DefaultParamsFile {
					t.Errorf("expected params file %q, got %q", DefaultParamsFile, cfg.Outputs.ParamsFile)
				}
				if cfg.Display.ErrorsShown != DefaultErrorsShown {
					t.Errorf("expected errors shown %d, got %d", DefaultErrorsShown, cfg.Display.ErrorsShown)
				}
				if cfg.Logging.Level != DefaultLoggingLevel {
					t.Errorf("expected logging level %q, got %q", DefaultLoggingLevel, cfg.Logging.Level)
				}
				if cfg.Logging.Format != DefaultLoggingFormat {
					t.Errorf("expected logging format %q, got %q", DefaultLoggingFormat, cfg.Logging.Format)
				}
				if cfg.Logging.Output != DefaultLoggingOutput {
					t.Errorf("expected logging output %q, got %q", DefaultLoggingOutput, cfg.Logging.Output)
				}
				if cfg.Archive.Backend != DefaultArchiveBackend {
					t.Errorf("expected archive backend %q, got %q", DefaultArchiveBackend, cfg.Archive.Backend)
				}
				if cfg.Archive.Path != DefaultArchivePath {
					t.Errorf("expected archive path %q, got %q", DefaultArchivePath, cfg.Archive.Path)
				}
				if cfg.Archive.RetentionDays != DefaultArchiveRetentionDays {
					t.Errorf("expected retention days %d, got %d", DefaultArchiveRetentionDays, cfg.Archive.RetentionDays)
				}
				if cfg.Archive.RetentionSchedule != DefaultArchiveRetentionSchedule {
					t.Errorf("expected retention schedule %q, got %q", DefaultArchiveRetentionSchedule, cfg.Archive.RetentionSchedule)
				}
				if cfg.Watch.DebounceMS != DefaultWatchDebounceMS {
					t.Errorf("expected debounce %d, got %d", DefaultWatchDebounceMS, cfg.Watch.DebounceMS)
				}
				if cfg.Watch.MetricsAddr != DefaultWatchMetricsAddr {
					t.Errorf("expected metrics addr %q, got %q", DefaultWatchMetricsAddr, cfg.Watch.MetricsAddr)
				}
			},
		},
		{
			name: "existing values are preserved",
			input: Config{
				Inputs: InputsConfig{
					ErrorFile: "/scratch/errors.txt",
				},
				Display: DisplayConfig{
					ErrorsShown: 3,
				},
				Logging: LoggingConfig{
					Level: "debug",
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Inputs.ErrorFile != "/scratch/errors.txt" {
					t.Error("existing error file was overwritten")
				}
				if cfg.Display.ErrorsShown != 3 {
					t.Error("existing errors shown was overwritten")
				}
				if cfg.Logging.Level != "debug" {
					t.Error("existing logging level was overwritten")
				}
				// Check that unset values got defaults
				if cfg.Inputs.TopologyFile != DefaultTopologyFile {
					t.Error("topology file should get default when not set")
				}
				if cfg.Logging.Format != DefaultLoggingFormat {
					t.Error("logging format should get default when not set")
				}
			},
		},
		{
			name: "archive enabled flag survives defaulting",
			input: Config{
				Archive: ArchiveConfig{
					Enabled: true,
					Backend: "sqlite",
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.Archive.Enabled {
					t.Error("archive enabled was cleared")
				}
				if cfg.Archive.Backend != "sqlite" {
					t.Error("existing archive backend was overwritten")
				}
				if cfg.Archive.Path != DefaultArchivePath {
					t.Error("archive path should get default when not set")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			ApplyDefaults(&cfg)
			tt.check(t, &cfg)
		})
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	var cfg Config

	// Apply defaults twice
	ApplyDefaults(&cfg)
	firstPass := cfg

	ApplyDefaults(&cfg)
	if cfg != firstPass {
		t.Error("ApplyDefaults should be idempotent")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Inputs.ErrorFile != DefaultErrorFile {
		t.Errorf("expected error file %q, got %q", DefaultErrorFile, cfg.Inputs.ErrorFile)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}
