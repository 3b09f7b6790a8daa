package cli

import (
	"github.com/hbjs97/actions/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd는 실제 구현으로 actions CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 App의 의존성으로 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "actions",
		Short:         "파일/폴더 대상 사용자 정의 셸 명령 실행기",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "상세 출력")
	cmd.PersistentFlags().StringVar(&a.Workspace, "workspace", a.Workspace, "워크스페이스 루트 (기본: git 루트)")

	cmd.AddCommand(
		a.newRunCmd(),
		a.newPickCmd(),
		a.newInvokeCmd(),
		a.newResolveCmd(),
		a.newListCmd(),
		a.newSettingsCmd(),
		a.newServeCmd(),
		a.newInitCmd(),
		a.newDoctorCmd(),
		a.newImportCmd(),
		a.newExportCmd(),
	)
	return cmd
}
