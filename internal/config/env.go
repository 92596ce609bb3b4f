package config

import "strings"

const (
	envBaseDir = "CONTRACTFIND_BASE_DIR"
	envDir     = "CONTRACTFIND_DIR"
	envCodes   = "CONTRACTFIND_CODES"
	envReport  = "CONTRACTFIND_REPORT"
	envElement = "CONTRACTFIND_ELEMENT"
	envExt     = "CONTRACTFIND_EXT"
)

// FromEnv reads the CONTRACTFIND_* variables.
func FromEnv(getenv func(string) string) Overrides {
	return Overrides{
		CorpusRoot: envOr(getenv, envDir),
		CodesFile:  envOr(getenv, envCodes),
		ReportFile: envOr(getenv, envReport),
		Element:    envOr(getenv, envElement),
		Extension:  envOr(getenv, envExt),
	}
}

func envOr(getenv func(string) string, key string) *string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return &v
	}

	return nil
}
