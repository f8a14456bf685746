// Package config provides configuration management for the piigen tool.
//
// Configuration is layered: built-in defaults, an optional piigen.yml file in
// the working directory, then PIIGEN_* environment variables, with the
// environment taking precedence. Only ambient concerns (logging, output base
// directory) are configurable this way - the generation run itself is driven
// by the interactive prompts.
//
// The package also owns the Paths type, the single source of truth for the
// per-format output directories, and the application-wide constants
// (calibration values, thresholds, directory names).
package config
