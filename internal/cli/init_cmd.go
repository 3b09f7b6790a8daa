package cli

import (
	"fmt"

	"github.com/hbjs97/actions/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "예시 작업이 들어 있는 설정 파일을 만든다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(a.CfgPath, force); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
			fmt.Fprintln(out, "작업을 수정한 후 actions doctor로 설정을 확인하세요.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	return cmd
}
