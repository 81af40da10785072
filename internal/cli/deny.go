package cli

import (
	"fmt"

	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/envfile"
	"github.com/spf13/cobra"
)

func (a *App) newDenyCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "deny",
		Short: "디렉토리의 승인을 해제한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeny(cmd, dir)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "해제할 디렉토리 (기본: 현재 디렉토리)")
	return cmd
}

// runDeny는 환경 파일이 없어도 동작한다 — 파일이 이미 삭제된 디렉토리의
// 승인 기록도 지울 수 있어야 한다. 없는 기록 제거는 no-op이다.
func (a *App) runDeny(cmd *cobra.Command, dirFlag string) error {
	start, err := workDir(dirFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	// 환경 파일이 부모에 있으면 그 디렉토리의 승인을 해제한다.
	// 파일을 찾지 못하면 지정된 디렉토리 자체를 해제한다.
	target := start
	if envDir, found, err := envfile.Locate(start, cfg.EnvFileName, cfg.SearchDepth()); err == nil && found {
		target = envDir
	}

	store, storePath, err := loadStore(cfg)
	if err != nil {
		return err
	}
	store.Revoke(target)
	if err := store.Save(storePath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s의 %s 승인 해제\n", target, cfg.EnvFileName)
	return nil
}
