package pokedex

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pokedex/internal/version"
	"github.com/arthur-debert/pokedex/pkg/cobrax/topics"
	"github.com/arthur-debert/pokedex/pkg/config"
	"github.com/arthur-debert/pokedex/pkg/core"
	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/logging"
	"github.com/arthur-debert/pokedex/pkg/output/styles"
	"github.com/arthur-debert/pokedex/pkg/render"
	"github.com/arthur-debert/pokedex/pkg/sprite"
	"github.com/arthur-debert/pokedex/pkg/ui"
	"github.com/arthur-debert/pokedex/pkg/utils"
)

//go:embed topics
var topicsFS embed.FS

// lookupFlags are the root command flags that feed a lookup
type lookupFlags struct {
	format       string
	mode         string
	spriteSource string
	width        int
	noArt        bool
	saveSprite   string
}

// overrides maps the flags the user actually set onto config keys
func (f *lookupFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("format") {
		o["output.format"] = f.format
	}
	if flags.Changed("mode") {
		o["render.mode"] = f.mode
	}
	if flags.Changed("sprite-source") {
		o["sprite.source"] = f.spriteSource
	}
	if flags.Changed("width") {
		o["sprite.width"] = f.width
	}
	if flags.Changed("no-art") {
		o["render.enabled"] = !f.noArt
	}
	return o
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
		lf         lookupFlags
	)

	rootCmd := &cobra.Command{
		Use:     "pokedex <name or id>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    searchArg,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, lf.overrides(cmd))
			if err != nil {
				return err
			}
			settings, err := cfg.Validate()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			settings.Format = resolveFormat(settings.Format, out)

			opts := core.OptionsFromConfig(args[0], cfg, settings, utils.ExpandPath(lf.saveSprite))
			entry, err := core.Lookup(cmd.Context(), opts)
			if err != nil {
				return err
			}

			return core.Present(entry, settings.Format, out)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	// Lookup flags
	rootCmd.Flags().StringVarP(&lf.format, "format", "f", "", MsgFlagFormat)
	rootCmd.Flags().StringVarP(&lf.mode, "mode", "m", "", MsgFlagMode)
	rootCmd.Flags().StringVar(&lf.spriteSource, "sprite-source", "", MsgFlagSpriteSource)
	rootCmd.Flags().IntVar(&lf.width, "width", 0, MsgFlagWidth)
	rootCmd.Flags().BoolVar(&lf.noArt, "no-art", false, MsgFlagNoArt)
	rootCmd.Flags().StringVar(&lf.saveSprite, "save-sprite", "", MsgFlagSaveSprite)

	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion(ui.Formats()))
	_ = rootCmd.RegisterFlagCompletionFunc("mode", fixedCompletion(render.Modes()))
	_ = rootCmd.RegisterFlagCompletionFunc("sprite-source", fixedCompletion(sprite.Sources()))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "COMMANDS:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.Initialize(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// searchArg requires exactly one pokemon name or id
func searchArg(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.New(errors.ErrArgumentMissing, MsgErrSearchMissing).
			WithDetail(usageDetail, true)
	case 1:
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrTooManyArgs, len(args)).
			WithDetail(usageDetail, true)
	}
}

const usageDetail = "usage"

// IsUsageError reports whether err comes from a malformed command line
func IsUsageError(err error) bool {
	usage, _ := errors.GetErrorDetails(err)[usageDetail].(bool)
	return usage
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// loadConfig loads the layered configuration and applies the styles file it names
func loadConfig(path string, overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.LoadConfiguration(config.LoadOptions{
		Path:      utils.ExpandPath(path),
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Output.StylesFile != "" {
		if err := styles.LoadStyles(cfg.Output.StylesFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, MsgErrStylesFile, cfg.Output.StylesFile)
		}
	}
	return cfg, nil
}

// resolveFormat settles "auto" against the real output. Anything that is not
// a file, such as a test buffer, gets plain text.
func resolveFormat(format ui.Format, out io.Writer) ui.Format {
	if f, ok := out.(*os.File); ok {
		return ui.Resolve(format, f)
	}
	if format == ui.FormatAuto {
		return ui.FormatText
	}
	return format
}

func newConfigCmd(configPath *string) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := cmd.OutOrStdout().Write(config.EmbeddedDefaults())
				return err
			}

			cfg, err := loadConfig(*configPath, nil)
			if err != nil {
				return err
			}
			if _, err := cfg.Validate(); err != nil {
				return err
			}

			dump, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dump)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
