package config

// Validate clamps out-of-range values to the documented defaults
// rather than failing; config files are never a reason to refuse to
// start.
func Validate(cfg *Config) {
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		cfg.Threshold = Defaults().Threshold
	}
	if cfg.SleepTimeoutSec <= 0 {
		cfg.SleepTimeoutSec = Defaults().SleepTimeoutSec
	}
	if cfg.GRPCPort == "" {
		cfg.GRPCPort = Defaults().GRPCPort
	}
	if cfg.WakeUpTarget == "" {
		cfg.WakeUpTarget = Defaults().WakeUpTarget
	}
}
