package pokedex

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Look up a pokemon and draw its sprite in the terminal"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgConfigShort     = "Print the effective configuration"

	// Output
	MsgVersionFormat = "pokedex version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrSearchMissing = "a pokemon name or id is required"
	MsgErrTooManyArgs   = "expected one pokemon name or id, got %d arguments"
	MsgErrStylesFile    = "failed to load styles from %s"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default $XDG_CONFIG_HOME/pokedex/config.toml)"
	MsgFlagFormat       = "Output format: plain, table, json or auto"
	MsgFlagMode         = "Sprite rendering mode: halfblock or fullcolor"
	MsgFlagSpriteSource = "Where the sprite comes from: api or pokemondb"
	MsgFlagWidth        = "Shrink the sprite to this many columns (0 keeps the native size)"
	MsgFlagNoArt        = "Do not fetch or draw the sprite"
	MsgFlagSaveSprite   = "Also save the sprite png to this path"
	MsgFlagDefaults     = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
