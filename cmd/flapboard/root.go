package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flapboard",
	Short: "Render templates for a 6x22 split-flap display",
	Long: wordwrap.WrapString(`
flapboard turns small text templates into frames for a 6x22 split-flap character display. Templates mix literal text, {{source.field}} data references, {color} tile markers and {left}/{center}/{right} alignment directives; the tool resolves, wraps and aligns them into exactly six rows of twenty-two tiles, as text or as the integer tile codes the display hardware consumes.

Available Commands:

`, 100),
	Run:               runRoot,
	DisableAutoGenTag: true,
}

func runRoot(cmd *cobra.Command, args []string) {
	versionFlag, err := cmd.Flags().GetBool("version")
	if err == nil && versionFlag {
		fmt.Printf("flapboard %s\n", Version)
		return
	}
	_ = cmd.Help()
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	configureLogging()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogging sets the global zerolog logger from FLAPBOARD_LOG.
// Unset or unparsable values keep logging off so command output stays
// machine-readable.
func configureLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("FLAPBOARD_LOG")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.Disabled
	}
	zerolog.SetGlobalLevel(level)
}

func init() {
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Print the version number of flapboard")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)

	rootCmd.Root().CompletionOptions.DisableDefaultCmd = true
}
