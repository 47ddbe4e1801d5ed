// Package config loads msgcue settings from a TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/msgcue/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	capacity     = 500            # messages retained
//	follow       = "~/app.log"    # file to tail; empty reads piped stdin
//	backlog      = 200            # lines loaded from follow on startup
//	poll_seconds = 1
//	pause_on     = ["error"]      # levels that wait for enter
//
//	[window]
//	width        = 0              # 0 fills the terminal
//	height       = 0
//	border       = ""             # repeated across the top and bottom
//	level_format = "long"         # long, short, or none
//	show_time    = true
//	min_level    = "debug"        # most verbose level shown
//
// Level names are case-insensitive. An unknown level name is a load error
// wrapping *message.InvalidLevelError; there is no silent fallback.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than a
// missing file, TOML parse errors and invalid level names or formats. A
// missing config file is not an error.
package config
