package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/settings"
	"github.com/spf13/cobra"
)

func (a *App) newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "작업 목록을 json, yaml, toml, vscode 형식으로 내보낸다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}

			f, err := exportFormat(format, args)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if len(args) == 1 {
				file, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
				if err != nil {
					return fmt.Errorf("cli.export: %w", err)
				}
				defer file.Close()
				w = file
			}
			return config.Export(w, s.cfg.Actions, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "형식 (json, yaml, toml, vscode). 기본: 파일 확장자 또는 json")
	return cmd
}

func exportFormat(format string, args []string) (config.Format, error) {
	if format != "" {
		return config.ParseFormat(format)
	}
	if len(args) == 1 {
		return config.FormatFromPath(args[0])
	}
	return config.FormatJSON, nil
}

func (a *App) newImportCmd() *cobra.Command {
	var (
		format  string
		replace bool
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "파일의 작업을 현재 설정에 추가한다 (VS Code settings.json 포함)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cli.import: %w", err)
			}

			f, err := importFormat(format, args[0])
			if err != nil {
				return err
			}

			s, err := a.open()
			if err != nil {
				return err
			}

			var incoming []action.Action
			cfg := s.cfg
			if f == config.FormatVSCode {
				vs, err := config.ImportVSCode(data)
				if err != nil {
					return err
				}
				vs.Apply(cfg)
				incoming = vs.Actions
			} else if incoming, err = config.Import(data, f); err != nil {
				return err
			}

			if err := settings.ValidateList(incoming); err != nil {
				return err
			}
			merged := config.Merge(cfg.Actions, incoming, replace)
			cfg.Actions = merged.Actions
			if err := config.Save(a.CfgPath, cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "추가 %d, 교체 %d, 건너뜀 %d\n", len(merged.Added), len(merged.Replaced), len(merged.Skipped))
			if len(merged.Skipped) > 0 {
				fmt.Fprintf(out, "이미 있는 id (--replace로 덮어쓰기): %s\n", strings.Join(merged.Skipped, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "형식 (json, yaml, toml, vscode). 기본: 파일 확장자")
	cmd.Flags().BoolVar(&replace, "replace", false, "같은 id의 작업을 덮어쓴다")
	return cmd
}

func importFormat(format, path string) (config.Format, error) {
	if format != "" {
		return config.ParseFormat(format)
	}
	return config.FormatFromPath(path)
}
