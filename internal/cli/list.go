package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/hbjs97/actions/internal/action"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	var (
		contextFlag string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "설정된 작업 목록을 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			list := s.cfg.Actions
			if contextFlag != "" {
				c, err := action.ParseContext(contextFlag)
				if err != nil {
					return err
				}
				list = action.Visible(list, c)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if list == nil {
					list = []action.Action{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			if len(list) == 0 {
				fmt.Fprintln(out, "설정된 작업이 없습니다.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL\tCONTEXTS\tSTATUS\tCOMMAND")
			for _, act := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", act.ID, act.Label, contextList(act), status(act), act.Command)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if s.cfg.UseSubmenu {
				fmt.Fprintln(out, "\n(use_submenu: 컨텍스트 메뉴에서 하위 메뉴로 묶여 표시됩니다)")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&contextFlag, "context", "c", "", "이 컨텍스트에 보이는 작업만 출력")
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON으로 출력")
	return cmd
}

func contextList(a action.Action) string {
	cs := a.EffectiveContexts()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return strings.Join(names, ",")
}

func status(a action.Action) string {
	switch {
	case a.Validate() != nil:
		return "invalid"
	case !a.IsEnabled():
		return "disabled"
	default:
		return "enabled"
	}
}
