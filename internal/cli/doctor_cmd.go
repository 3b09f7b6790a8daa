package cli

import (
	"fmt"

	"github.com/hbjs97/actions/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "설정과 실행 환경을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := doctor.RunAll(cmd.Context(), a.commander(), a.CfgPath)
			doctor.Print(cmd.OutOrStdout(), results)
			if doctor.HasFailure(results) {
				return fmt.Errorf("cli.doctor: 진단 실패 항목이 있습니다")
			}
			return nil
		},
	}
}
