// Package commands implements the taskline console commands.
package commands

// Flags are the global CLI flags shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
}
