package config

const (
	defaultConsoleAddress = "192.168.0.10:6000"
	defaultDialTimeout    = 5
	defaultReadTimeout    = 10
	defaultDataDir        = "~/.local/share/stashmap/data"
	defaultSpeciesFile    = "species_en.txt"
	defaultLockPath       = "~/.local/share/stashmap/scan.lock"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Console: Console{
			Address:        defaultConsoleAddress,
			DialTimeout:    defaultDialTimeout,
			ReadTimeout:    defaultReadTimeout,
			ProbeOnConnect: true,
		},
		Data: Data{
			Dir:         defaultDataDir,
			SpeciesFile: defaultSpeciesFile,
		},
		Scan: Scan{
			LockPath: defaultLockPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
