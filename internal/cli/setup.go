package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "설정 파일을 생성하고 셸 hook을 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일 덮어쓰기")
	return cmd
}

// runSetup는 설정 파일 템플릿을 만들고 감지된 셸의 rc 파일에 hook을 추가한다.
// hook 설치 실패는 경고로만 남긴다 — 'durrrrrenv hook'으로 직접 설치할 수 있다.
func (a *App) runSetup(cmd *cobra.Command, force bool) error {
	errOut := cmd.ErrOrStderr()

	if _, err := os.Stat(a.CfgPath); err == nil && !force {
		return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s (--force로 덮어쓰기)", a.CfgPath)
	}

	if err := os.MkdirAll(filepath.Dir(a.CfgPath), 0700); err != nil {
		return fmt.Errorf("cli.setup: 디렉토리 생성 실패: %w", err)
	}
	if err := os.WriteFile(a.CfgPath, []byte(config.Template), 0600); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}
	fmt.Fprintf(errOut, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)

	shellType := shell.DetectShell()
	rcPath := shell.RCPath(shellType)
	if rcPath == "" {
		fmt.Fprintf(errOut, "경고: 지원하지 않는 셸 (%s) — rc 파일에 'eval \"$(durrrrrenv hook)\"'를 직접 추가하세요\n", shellType)
		return nil
	}
	if err := shell.InstallHook(shellType, rcPath); err != nil {
		fmt.Fprintf(errOut, "경고: hook 설치 실패: %v\n", err)
		return nil
	}
	fmt.Fprintf(errOut, "셸 hook 설치 완료: %s\n", rcPath)
	fmt.Fprintln(errOut, "설정을 수정한 후 durrrrrenv doctor로 환경을 확인하세요.")
	return nil
}
