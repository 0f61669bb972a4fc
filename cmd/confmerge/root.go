package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/confmerge"
	"github.com/reoring/confmerge/internal/logger"
	"github.com/reoring/confmerge/source"
)

type flags struct {
	definition      string
	strictKeys      bool
	strictTypes     bool
	envPrefix       string
	envFile         string
	envPreserveCase bool
	maxDepth        int
	logLevel        string
	logFormat       string
}

type app struct {
	flags
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "confmerge",
		Short: "Merge configuration fragments against a definition",
		Long: `confmerge loads a definition, merges JSON, YAML and dotenv fragments into it
in order and reports undefined keys, invalid values and missing required keys.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger.New(&logger.Config{Level: a.logLevel, Format: a.logFormat})
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.definition, "definition", "d", "", "definition file (.json, .yaml, .yml)")
	pf.BoolVar(&a.strictKeys, "strict-keys", false, "reject undefined keys and require every leaf")
	pf.BoolVar(&a.strictTypes, "strict-types", false, "require exact value types instead of casting")
	pf.StringVar(&a.envPrefix, "env-prefix", "", "merge environment variables named PREFIX__A__B last")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file merged after the fragment files")
	pf.BoolVar(&a.envPreserveCase, "env-preserve-case", false, "keep the case of environment variable segments instead of lower-casing them")
	pf.IntVar(&a.maxDepth, "max-depth", 0, "maximum nesting depth of JSON fragments (0 = unlimited)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "console", "log format (console, json)")

	root.AddCommand(a.mergeCmd(), a.checkCmd(), a.definitionCmd())
	return root
}

func (a *app) options() []confmerge.Option {
	opts := []confmerge.Option{confmerge.WithLogger(a.log)}
	if a.strictKeys {
		opts = append(opts, confmerge.WithKeyMode(confmerge.KeyStrict))
	}
	if a.strictTypes {
		opts = append(opts, confmerge.WithTypeMode(confmerge.TypeStrict))
	}
	return opts
}

func (a *app) envOptions() []source.Option {
	if a.envPreserveCase {
		return []source.Option{source.WithPreserveCase()}
	}
	return nil
}

func (a *app) loadDefinition() (confmerge.Definition, error) {
	if a.definition == "" {
		return confmerge.Definition{}, nil
	}
	docs, err := source.File(a.definition, source.WithMaxDepth(a.maxDepth))
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%s: expected exactly one definition document, got %d", a.definition, len(docs))
	}
	return confmerge.ParseDefinition(docs[0])
}

// run builds the configuration and adds the fragment files, the env file and
// the environment in that order.
func (a *app) run(ctx context.Context, files []string) (*confmerge.Configuration, error) {
	def, err := a.loadDefinition()
	if err != nil {
		return nil, err
	}
	conf, err := confmerge.New(def, a.options()...)
	if err != nil {
		return nil, err
	}

	docs, err := source.Files(ctx, files, source.WithMaxDepth(a.maxDepth))
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded fragments", zap.Strings("files", files), zap.Int("documents", len(docs)))
	for i, doc := range docs {
		if err := conf.Add(doc); err != nil {
			return nil, fmt.Errorf("fragment %d: %w", i+1, err)
		}
	}

	if a.envFile != "" {
		fh, err := os.Open(a.envFile)
		if err != nil {
			return nil, fmt.Errorf("env file: %w", err)
		}
		frag, err := source.Dotenv(fh, a.envPrefix, source.DefaultSeparator, a.envOptions()...)
		fh.Close()
		if err != nil {
			return nil, err
		}
		a.log.Debug("adding fragment", zap.String("file", a.envFile))
		if err := conf.Add(frag); err != nil {
			return nil, fmt.Errorf("%s: %w", a.envFile, err)
		}
	}

	if a.envPrefix != "" {
		a.log.Debug("adding environment", zap.String("prefix", a.envPrefix))
		if err := conf.Add(source.Environ(os.Environ(), a.envPrefix, source.DefaultSeparator, a.envOptions()...)); err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
	}
	return conf, nil
}

var errNoFragments = errors.New("at least one fragment file or --env-prefix/--env-file is required")

func (a *app) requireInput(args []string) error {
	if len(args) == 0 && a.envPrefix == "" && a.envFile == "" {
		return errNoFragments
	}
	return nil
}
