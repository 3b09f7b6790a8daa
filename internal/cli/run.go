package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/spf13/cobra"
)

func (a *App) newRunCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "run <action-id> [path...]",
		Short: "작업 하나를 대상 경로에 대해 실행한다",
		Long: "작업 하나를 대상 경로에 대해 실행한다.\n" +
			"경로가 둘 이상이면 첫 경로가 대상, 전체가 {files}가 된다.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			res, err := s.registry.Invoke(cmd.Context(), action.CommandID(args[0]), invocation(args[1:]))
			if asJSON && res != nil {
				if werr := writeResult(cmd.OutOrStdout(), res); werr != nil {
					return werr
				}
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "실행 결과를 JSON으로 출력")
	return cmd
}

func (a *App) newInvokeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "invoke <command-id> [path...]",
		Short: "등록된 명령(actions.<id>, actions.show*Actions, actions.openSettings)을 호출한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			res, err := s.registry.Invoke(cmd.Context(), args[0], invocation(args[1:]))
			if asJSON && res != nil {
				if werr := writeResult(cmd.OutOrStdout(), res); werr != nil {
					return werr
				}
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "실행 결과를 JSON으로 출력")
	return cmd
}

func (a *App) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <action-id> [path...]",
		Short: "실행하지 않고 치환된 명령과 작업 디렉토리를 출력한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			act, ok := action.Find(s.cfg.Actions, args[0])
			if !ok {
				return fmt.Errorf("cli.resolve: %w: %q", ErrUnknownCommand, args[0])
			}
			inv := invocation(args[1:])
			res, err := s.executor.Resolve(cmd.Context(), executor.Request{
				Action:    act,
				Target:    inv.Target,
				Selection: inv.Selection,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "command: %s\ncwd:     %s\n", res.Command, res.Dir)
			return nil
		},
	}
}

func writeResult(w io.Writer, res *executor.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("cli.writeResult: %w", err)
	}
	return nil
}
