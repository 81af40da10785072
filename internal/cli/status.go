package cli

import (
	"fmt"
	"path/filepath"

	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/directive"
	"github.com/i2cjak/durrrrrenv/internal/envfile"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "디렉토리의 승인 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd, dir)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "확인할 디렉토리 (기본: 현재 디렉토리)")
	return cmd
}

// runStatus는 사람을 위한 보고다. 전부 stderr에 쓴다 — stdout은 다른
// 명령과 마찬가지로 eval 가능한 스크립트 전용으로 남겨둔다.
func (a *App) runStatus(cmd *cobra.Command, dirFlag string) error {
	start, err := workDir(dirFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "디렉토리: %s\n", start)

	envDir, found, err := envfile.Locate(start, cfg.EnvFileName, cfg.SearchDepth())
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(errOut, "상태: %s 파일 없음\n", cfg.EnvFileName)
		return nil
	}
	if envDir != start {
		fmt.Fprintf(errOut, "환경 파일: %s\n", filepath.Join(envDir, cfg.EnvFileName))
	}

	content, err := envfile.Read(envDir, cfg.EnvFileName)
	if err != nil {
		return err
	}

	store, _, err := loadStore(cfg)
	if err != nil {
		return err
	}

	if !store.IsAuthorized(envDir, content) {
		fmt.Fprintln(errOut, "상태: 미승인 또는 파일 변경됨")
		fmt.Fprintln(errOut, "\n'durrrrrenv allow'로 승인할 수 있습니다")
		return nil
	}

	fmt.Fprintln(errOut, "상태: 승인됨")

	directives, err := directive.Parse(content)
	if err != nil {
		// 승인 이후 손상된 파일도 상태는 보여준다
		fmt.Fprintf(errOut, "파싱 에러: %v\n", err)
		return nil
	}
	fmt.Fprintln(errOut, "\n실행될 명령:")
	for _, d := range directives {
		fmt.Fprintf(errOut, "  %s\n", d)
	}
	return nil
}
