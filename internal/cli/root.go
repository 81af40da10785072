package cli

import (
	"fmt"
	"os"

	"github.com/i2cjak/durrrrrenv/internal/cmdexec"
	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/trust"
	"github.com/spf13/cobra"
)

// App은 CLI 명령이 공유하는 의존성 묶음이다. 바이너리는 RealCommander와
// HuhPrompter를 쓰고, 테스트는 가짜 구현을 주입한다.
type App struct {
	Commander cmdexec.Commander
	Prompter  Prompter
	CfgPath   string
}

// NewRootCmd는 durrrrrenv CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "durrrrrenv",
		Short:        "디렉토리별 환경 파일을 승인 후 로드하는 direnv 대안",
		SilenceUsage: true,
	}

	if a.CfgPath == "" {
		a.CfgPath = defaultCfgPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newCheckCmd(),
		a.newAllowCmd(),
		a.newDenyCmd(),
		a.newStatusCmd(),
		a.newHookCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

func defaultCfgPath() string {
	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 설정 경로 확인 실패: %v\n", err)
		return "config.toml"
	}
	return path
}

// workDir는 --dir 플래그 값 또는 현재 작업 디렉토리를 반환한다.
func workDir(dirFlag string) (string, error) {
	if dirFlag != "" {
		return dirFlag, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cli: 작업 디렉토리 확인 실패: %w", err)
	}
	return cwd, nil
}

// loadStore는 설정이 가리키는 trust store를 로드하고 경로와 함께 반환한다.
func loadStore(cfg *config.Config) (*trust.Store, string, error) {
	path, err := cfg.TrustStorePath()
	if err != nil {
		return nil, "", err
	}
	s, err := trust.Load(path)
	if err != nil {
		return nil, "", err
	}
	return s, path, nil
}
