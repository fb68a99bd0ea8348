package config

import (
	"os"
	"path/filepath"
)

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "hatch")
	}
	return filepath.Join(home, ".config", "hatch")
}

func DefinitionFilePath() string {
	exe, err := os.Executable()
	if err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), "hatch.toml")
		if _, err := os.Stat(adjacent); err == nil {
			return adjacent
		}
	}
	return filepath.Join(ConfigDir(), "hatch.toml")
}

func StateFilePath() string {
	return filepath.Join(ConfigDir(), "state.json")
}

func LogFilePath() string {
	return filepath.Join(ConfigDir(), "hatch.log")
}
