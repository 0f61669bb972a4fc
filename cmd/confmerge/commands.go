package main

import (
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func (a *app) mergeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "merge [files...]",
		Short: "Merge fragments and print the resulting configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireInput(args); err != nil {
				return err
			}
			conf, err := a.run(cmd.Context(), args)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), format, conf.Get())
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format (json, yaml)")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Merge fragments and report the first issue, printing nothing on success",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireInput(args); err != nil {
				return err
			}
			if _, err := a.run(cmd.Context(), args); err != nil {
				return err
			}
			a.log.Info("configuration is valid", zap.Int("files", len(args)))
			return nil
		},
	}
}

func (a *app) definitionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "definition [files...]",
		Short: "Print the effective definition, including nodes inferred from the fragments",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := a.run(cmd.Context(), args)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), format, conf.Definition().Map())
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (json, yaml)")
	return cmd
}

func write(w io.Writer, format string, v map[string]any) error {
	switch format {
	case "json":
		b, err := j.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
