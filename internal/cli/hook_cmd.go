package cli

import (
	"fmt"

	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸 통합 스니펫을 출력한다",
		Long:  "셸 통합 스니펫을 stdout에 출력한다. rc 파일에서 eval하거나 durrrrrenv setup으로 설치한다.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHook(cmd, shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (zsh | bash | fish, 기본: 설정값)")
	return cmd
}

func (a *App) runHook(cmd *cobra.Command, shellType string) error {
	if shellType == "" {
		cfg, err := config.Load(a.CfgPath)
		if err != nil {
			return err
		}
		shellType = cfg.DefaultShell
	}

	snippet := shell.HookSnippet(shellType)
	if snippet == "" {
		return fmt.Errorf("cli.hook: 지원하지 않는 셸: %s", shellType)
	}
	fmt.Fprint(cmd.OutOrStdout(), snippet)
	return nil
}
