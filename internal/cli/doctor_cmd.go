package cli

import (
	"fmt"
	"io"

	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/doctor"
	"github.com/i2cjak/durrrrrenv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

// runDoctor는 진단 결과를 보고할 뿐 실패해도 에러를 반환하지 않는다.
// 설정이 깨져 있어도 나머지 검사는 기본값으로 진행한다.
func (a *App) runDoctor(cmd *cobra.Command) error {
	errOut := cmd.ErrOrStderr()

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		cfg = &config.Config{}
	}

	storePath, err := cfg.TrustStorePath()
	if err != nil {
		fmt.Fprintf(errOut, "  [FAIL] trust store 경로: %v\n", err)
		return nil
	}

	shellType := cfg.DefaultShell
	if shellType == "" {
		shellType = shell.DetectShell()
	}
	rcPath := shell.RCPath(shellType)

	results := doctor.RunAll(cmd.Context(), a.Commander, a.CfgPath, storePath, shellType, rcPath)
	printDiagResults(errOut, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
