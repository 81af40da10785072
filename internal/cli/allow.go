package cli

import (
	"fmt"

	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/directive"
	"github.com/i2cjak/durrrrrenv/internal/envfile"
	"github.com/i2cjak/durrrrrenv/internal/script"
	"github.com/spf13/cobra"
)

func (a *App) newAllowCmd() *cobra.Command {
	var dir string
	var yes bool

	cmd := &cobra.Command{
		Use:   "allow",
		Short: "환경 파일의 현재 내용을 승인하고 즉시 로드 스크립트를 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAllow(cmd, dir, yes)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "승인할 디렉토리 (기본: 현재 디렉토리)")
	cmd.Flags().BoolVar(&yes, "yes", false, "확인 프롬프트 생략")
	return cmd
}

// runAllow는 내용을 보여주고 확인을 받은 뒤 승인한다. 승인은 파일의 현재
// 내용에 묶인다 — 이후 한 byte라도 바뀌면 check는 다시 거부한다.
func (a *App) runAllow(cmd *cobra.Command, dirFlag string, yes bool) error {
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
		return fmt.Errorf("cli.allow: %s에서 %s 파일을 찾지 못했습니다", start, cfg.EnvFileName)
	}

	content, err := envfile.Read(envDir, cfg.EnvFileName)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "%s 내용 (%s):\n", cfg.EnvFileName, envDir)
	fmt.Fprintln(errOut, "---")
	fmt.Fprintln(errOut, content)
	fmt.Fprintln(errOut, "---")

	if !yes {
		ok, err := a.Prompter.Confirm("이 파일의 실행을 승인하시겠습니까?")
		if err != nil {
			return fmt.Errorf("cli.allow: %w", err)
		}
		if !ok {
			fmt.Fprintln(errOut, "중단했습니다.")
			return nil
		}
	}

	// 파싱 불가능한 파일은 승인하지 않는다
	directives, err := directive.Parse(content)
	if err != nil {
		return err
	}

	store, storePath, err := loadStore(cfg)
	if err != nil {
		return err
	}
	if err := store.Approve(envDir, content); err != nil {
		return err
	}
	if err := store.Save(storePath); err != nil {
		return err
	}

	fmt.Fprintf(errOut, "%s의 %s 승인 완료\n", envDir, cfg.EnvFileName)

	// 바로 eval할 수 있도록 스크립트를 stdout에 출력한다
	text, err := script.Compile(directives, envDir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
