package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// installMarker는 rc 파일에 hook이 이미 있는지 판단하는 기준 문자열이다.
// 모든 HookSnippet 첫 줄에 포함된다.
const installMarker = "durrrrrenv shell integration"

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	return filepath.Base(sh)
}

// RCPath는 셸별 RC 파일 경로를 반환한다.
func RCPath(shellType string) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "durrrrrenv.fish")
	default:
		return ""
	}
}

// InstallHook은 셸 RC 파일에 durrrrrenv hook을 추가한다.
// 이미 설치되어 있으면 건너뛴다.
func InstallHook(shellType, rcPath string) error {
	snippet := HookSnippet(shellType)
	if snippet == "" {
		return fmt.Errorf("shell.InstallHook: 지원하지 않는 셸: %s", shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), installMarker) {
		return nil // 이미 설치됨
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return fmt.Errorf("shell.InstallHook: %w", err)
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("shell.InstallHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return fmt.Errorf("shell.InstallHook: %w", err)
	}

	return nil
}

// Installed는 rc 파일에 hook이 설치되어 있는지 확인한다.
func Installed(rcPath string) bool {
	data, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), installMarker)
}
