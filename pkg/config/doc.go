// Package config handles configuration management for pokedex.
// It supports loading configuration from multiple sources including
// embedded defaults, a TOML file, environment variables, and command-line flags.
//
// Sources are applied in this order, later ones winning:
//
//  1. embedded/defaults.toml
//  2. the user file ($XDG_CONFIG_HOME/pokedex/config.toml or --config)
//  3. POKEDEX_<SECTION>_<KEY> environment variables
//  4. flag overrides passed by the command
package config
