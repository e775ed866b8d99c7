package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/editorconfig/internal/version"
	"github.com/arthur-debert/editorconfig/pkg/config"
	"github.com/arthur-debert/editorconfig/pkg/errors"
	"github.com/arthur-debert/editorconfig/pkg/logging"
	"github.com/arthur-debert/editorconfig/pkg/resolver"
)

func newRootCmd() *cobra.Command {
	var (
		verbosity      int
		configPath     string
		developVersion string
		tableOutput    bool
		settings       *config.Settings
	)

	cmd := &cobra.Command{
		Use:   "editorconfig <FILEPATH>...",
		Short: "Resolve EditorConfig properties for file paths",
		Long: `editorconfig walks the directory hierarchy of each given file path,
collects the .editorconfig files that govern it and prints the resulting
property set, one key=value pair per line.`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			settings, err = config.Load()
			if err != nil {
				return err
			}
			// The settings file seeds verbosity; the flag wins when given.
			if !cmd.Flags().Changed("verbose") {
				verbosity = settings.Verbosity
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, "at least one file path is required")
			}

			if !cmd.Flags().Changed("table") {
				tableOutput = settings.Table
			}

			r := resolver.New(resolver.Options{
				ConfigFileName: settings.ConfigFileName,
				ConfigPath:     configPath,
				DevelopVersion: developVersion,
			})

			out := cmd.OutOrStdout()
			styled := false
			if f, ok := out.(*os.File); ok {
				styled = styledOutput(f)
			}
			for i, target := range args {
				set, err := r.Resolve(target)
				if err != nil {
					return err
				}
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "[%s]\n", target)
				}
				if tableOutput {
					writeTable(out, set, styled)
				} else {
					writePlain(out, set)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().CountVar(&verbosity, "verbose", "Increase verbosity (repeat for DEBUG, TRACE)")
	cmd.Flags().StringVarP(&configPath, "file", "f", "", "Use this config file instead of discovered .editorconfig files")
	cmd.Flags().StringVarP(&developVersion, "develop-version", "b", "", "Emulate the behavior of an older release")
	cmd.Flags().BoolVar(&tableOutput, "table", false, "Render properties as a table")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "editorconfig version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
