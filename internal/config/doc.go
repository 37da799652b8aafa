// Package config loads the btime YAML configuration.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. Every field is optional; Default returns the values used
// when no file is given, and command-line flags override both.
package config
