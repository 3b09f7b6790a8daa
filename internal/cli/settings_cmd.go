package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func (a *App) newSettingsCmd() *cobra.Command {
	var stdio bool
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "작업 목록을 편집한다",
		Long: "작업 목록을 편집한다.\n" +
			"--stdio는 stdin/stdout으로 JSON lines settings 메시지를 주고받는다 (에디터 플러그인용).",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			if stdio {
				in := cmd.InOrStdin()
				if in == nil {
					in = os.Stdin
				}
				return s.editor.ServeStream(cmd.Context(), in, cmd.OutOrStdout())
			}
			return a.runInteractiveSettings(cmd.Context(), s)
		},
	}
	cmd.Flags().BoolVar(&stdio, "stdio", false, "JSON lines 프로토콜 모드")
	return cmd
}
