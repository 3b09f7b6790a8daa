package cli

import (
	"errors"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/picker"
	"github.com/spf13/cobra"
)

func (a *App) newPickCmd() *cobra.Command {
	var (
		contextFlag string
		choice      string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "pick [path...]",
		Short: "컨텍스트의 작업 목록에서 골라 실행한다",
		Long: "컨텍스트의 작업 목록에서 골라 실행한다.\n" +
			"editor 컨텍스트에서 경로가 없으면 $ACTIONS_ACTIVE_FILE을 대상으로 쓴다.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := action.ParseContext(contextFlag)
			if err != nil {
				return err
			}
			s, err := a.open()
			if err != nil {
				return err
			}

			inv := invocation(args)
			if inv.Target == "" {
				inv.Target = activeFile(c)
			}
			inv.Choice = choice

			res, err := s.registry.Invoke(cmd.Context(), action.PickerCommand(c), inv)
			if errors.Is(err, picker.ErrCancelled) && choice == "" {
				return nil
			}
			if asJSON && res != nil {
				if werr := writeResult(cmd.OutOrStdout(), res); werr != nil {
					return werr
				}
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&contextFlag, "context", "c", string(action.ContextExplorer), "컨텍스트 (explorer, scm, editor)")
	cmd.Flags().StringVar(&choice, "choice", "", "대화형 선택 대신 실행할 작업 id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "실행 결과를 JSON으로 출력")
	return cmd
}
