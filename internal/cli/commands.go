package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/leveldbpatch/internal/version"
	"github.com/arthur-debert/leveldbpatch/pkg/commands/check"
	"github.com/arthur-debert/leveldbpatch/pkg/commands/genconfig"
	"github.com/arthur-debert/leveldbpatch/pkg/commands/patch"
	"github.com/arthur-debert/leveldbpatch/pkg/config"
	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/arthur-debert/leveldbpatch/pkg/filesystem"
	"github.com/arthur-debert/leveldbpatch/pkg/logging"
	"github.com/arthur-debert/leveldbpatch/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// flagKeys maps command-line flags to configuration keys. A flag only
// overrides the lower layers when it was set explicitly.
var flagKeys = map[string]string{
	"snappy-source-dir": "snappy.source_dir",
	"snappy-binary-dir": "snappy.binary_dir",
	"file":              "cmake.file",
	"encoding":          "cmake.encoding",
	"platform":          "cmake.platform",
	"format":            "output.format",
	"no-color":          "output.no_color",
	"diff":              "output.diff",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configFile string
		dryRun     bool
	)

	rootCmd := &cobra.Command{
		Use:     "leveldb-patch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Summary(),
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			result, err := patch.Run(patch.Options{
				FileSystem: filesystem.NewOS(),
				File:       cfg.CMake.File,
				Encoding:   cfg.CMake.Encoding,
				SourceDir:  cfg.Snappy.SourceDir,
				BinaryDir:  cfg.Snappy.BinaryDir,
				Platform:   cfg.Platform(),
				DryRun:     dryRun,
				Diff:       cfg.Output.Diff,
			})
			if err != nil {
				return err
			}
			return render(cmd, cfg, result)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&configFile, "config", "", "Config file (default ./.leveldb-patch.toml if present)")
	pf.String("snappy-source-dir", "", "Snappy source directory")
	pf.String("snappy-binary-dir", "", "Snappy build directory holding the static library")
	pf.StringP("file", "f", "CMakeLists.txt", "Build file to patch")
	pf.String("encoding", "utf-8", "Character encoding of the build file")
	pf.String("platform", "auto", "Library naming convention: auto, windows or other")
	pf.String("format", "text", "Output format: text, yaml or json")
	pf.Bool("no-color", false, "Disable colored output")
	pf.Bool("diff", false, "Show a unified diff of the changes")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview changes without writing the file")

	rootCmd.AddCommand(newCheckCmd(&configFile))
	rootCmd.AddCommand(newGenConfigCmd(&configFile))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func newCheckCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			result, err := check.Run(check.Options{
				FileSystem: filesystem.NewOS(),
				File:       cfg.CMake.File,
				Encoding:   cfg.CMake.Encoding,
				SourceDir:  cfg.Snappy.SourceDir,
				BinaryDir:  cfg.Snappy.BinaryDir,
				Platform:   cfg.Platform(),
				Diff:       cfg.Output.Diff,
			})
			if err != nil {
				return err
			}
			if err := render(cmd, cfg, result); err != nil {
				return err
			}
			if !result.UpToDate {
				return errors.Newf(errors.ErrNeedsPatch, MsgNeedsPatch, result.File).
					WithDetail("path", result.File)
			}
			return nil
		},
	}
}

func newGenConfigCmd(configFile *string) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   genconfig.MsgShort,
		Long:    genconfig.MsgLong,
		Example: genconfig.MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
			}

			result, err := genconfig.Run(genconfig.Options{
				FileSystem: filesystem.NewOS(),
				Dir:        cwd,
				Write:      write,
			})
			if err != nil {
				return err
			}
			return render(cmd, cfg, result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write .leveldb-patch.toml to the current directory")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "LEVELDB-PATCH",
				Section: "1",
				Source:  "leveldb-patch " + version.Version,
				Manual:  "leveldb-patch manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

// loadConfig merges the configuration layers with the flags set on cmd
func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}

	log.Debug().Int("overrides", len(overrides)).Str("config", configFile).Msg("Loading configuration")
	return config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  overrides,
	})
}

func render(cmd *cobra.Command, cfg *config.Config, result interface{}) error {
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output format").
			WithDetail("key", "output.format")
	}
	renderer, err := output.New(cmd.OutOrStdout(), format, cfg.Output.NoColor)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}
