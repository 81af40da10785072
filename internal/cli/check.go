package cli

import (
	"fmt"
	"io"

	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/directive"
	"github.com/i2cjak/durrrrrenv/internal/envfile"
	"github.com/i2cjak/durrrrrenv/internal/script"
	"github.com/spf13/cobra"
)

func (a *App) newCheckCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "환경 파일을 검사하고 승인된 경우 로드 스크립트를 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, dir)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "검사할 디렉토리 (기본: 현재 디렉토리)")
	return cmd
}

// runCheck는 cd hook에서 매번 실행되는 경로다. 환경 파일이 없거나 아직
// 승인되지 않은 것은 에러가 아니다 — stdout에는 eval할 스크립트 외에
// 아무것도 쓰지 않는다.
func (a *App) runCheck(cmd *cobra.Command, dirFlag string) error {
	start, err := workDir(dirFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	envDir, found, err := envfile.Locate(start, cfg.EnvFileName, cfg.SearchDepth())
	if err != nil {
		return err
	}
	if !found {
		return nil
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
		printUnauthorizedHint(cmd.ErrOrStderr(), envDir, cfg.EnvFileName, content)
		return nil
	}

	directives, err := directive.Parse(content)
	if err != nil {
		return err
	}
	text, err := script.Compile(directives, envDir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// printUnauthorizedHint는 미승인 환경 파일 안내문을 stderr에 쓴다.
func printUnauthorizedHint(w io.Writer, dir, name, content string) {
	fmt.Fprintf(w, "durrrrrenv: 승인되지 않은 %s 파일 발견: %s\n", name, dir)
	fmt.Fprintln(w, "durrrrrenv: 내용을 확인한 뒤 로드하려면 'eval \"$(durrrrrenv allow)\"'를 실행하세요")
	fmt.Fprintln(w, "durrrrrenv: 파일 내용:")
	fmt.Fprintln(w, "---")
	fmt.Fprintln(w, content)
	fmt.Fprintln(w, "---")
}
