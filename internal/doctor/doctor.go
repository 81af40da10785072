package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/i2cjak/durrrrrenv/internal/cmdexec"
	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/shell"
	"github.com/i2cjak/durrrrrenv/internal/trust"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckSettings는 설정 파일 상태를 확인한다. 파일이 없는 것은 정상이다.
func CheckSettings(cfgPath string) DiagResult {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return DiagResult{
			Name:    "settings",
			Status:  StatusOK,
			Message: "설정 파일 없음 (기본값 사용)",
		}
	}
	if _, err := config.Load(cfgPath); err != nil {
		return DiagResult{
			Name:    "settings",
			Status:  StatusFail,
			Message: fmt.Sprintf("설정 파일 오류: %v", err),
			Fix:     fmt.Sprintf("%s 수정 또는 durrrrrenv setup --force 실행", cfgPath),
		}
	}
	return DiagResult{
		Name:    "settings",
		Status:  StatusOK,
		Message: cfgPath,
	}
}

// CheckStoreLoads는 trust store 문서가 파싱 가능한지 확인한다.
func CheckStoreLoads(storePath string) DiagResult {
	s, err := trust.Load(storePath)
	if err != nil {
		return DiagResult{
			Name:    "trust_store",
			Status:  StatusFail,
			Message: fmt.Sprintf("trust store 로드 실패: %v", err),
			Fix:     fmt.Sprintf("%s 파일을 확인하거나 삭제 후 다시 승인하세요", storePath),
		}
	}
	return DiagResult{
		Name:    "trust_store",
		Status:  StatusOK,
		Message: fmt.Sprintf("승인된 디렉토리 %d개", len(s.AllowedDirs)),
	}
}

// CheckStorePermissions는 trust store 파일 권한을 확인한다.
// 파일이 아직 없으면 검사를 건너뛴다.
func CheckStorePermissions(storePath string) DiagResult {
	if _, err := os.Stat(storePath); os.IsNotExist(err) {
		return DiagResult{
			Name:    "store_permissions",
			Status:  StatusOK,
			Message: "trust store 없음 (첫 승인 시 생성)",
		}
	}
	if err := trust.ValidatePermissions(storePath); err != nil {
		return DiagResult{
			Name:    "store_permissions",
			Status:  StatusWarn,
			Message: fmt.Sprintf("trust store 권한이 넓다: %v", err),
			Fix:     fmt.Sprintf("chmod 600 %s", storePath),
		}
	}
	return DiagResult{
		Name:    "store_permissions",
		Status:  StatusOK,
		Message: "0600",
	}
}

// CheckStaleEntries는 승인 기록 중 디렉토리가 사라진 항목을 찾는다.
// store를 읽을 수 없으면 검사를 건너뛴다 (CheckStoreLoads가 보고한다).
func CheckStaleEntries(storePath string) DiagResult {
	s, err := trust.Load(storePath)
	if err != nil {
		return DiagResult{
			Name:    "stale_entries",
			Status:  StatusOK,
			Message: "검사 생략 (trust store 로드 실패)",
		}
	}

	var stale []string
	for _, rec := range s.AllowedDirs {
		if _, err := os.Stat(rec.Path); err != nil {
			stale = append(stale, rec.Path)
		}
	}
	if len(stale) > 0 {
		return DiagResult{
			Name:    "stale_entries",
			Status:  StatusWarn,
			Message: fmt.Sprintf("사라진 디렉토리의 승인 기록 %d개 (%s ...)", len(stale), stale[0]),
			Fix:     "durrrrrenv deny --dir <경로> 로 정리하세요",
		}
	}
	return DiagResult{
		Name:    "stale_entries",
		Status:  StatusOK,
		Message: "모든 승인 기록의 디렉토리가 존재",
	}
}

// CheckShellBinary는 기본 셸 바이너리가 실행 가능한지 확인한다.
func CheckShellBinary(ctx context.Context, cmd cmdexec.Commander, shellType string) DiagResult {
	out, err := cmd.Run(ctx, shellType, "--version")
	if err != nil {
		return DiagResult{
			Name:    "shell_binary",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패", shellType),
			Fix:     fmt.Sprintf("%s 설치 또는 default_shell 설정 변경", shellType),
		}
	}
	return DiagResult{
		Name:    "shell_binary",
		Status:  StatusOK,
		Message: strings.TrimSpace(string(out)),
	}
}

// CheckHookInstalled는 셸 RC 파일에 hook이 설치되어 있는지 확인한다.
func CheckHookInstalled(shellType, rcPath string) DiagResult {
	if rcPath == "" {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("지원하지 않는 셸: %s", shellType),
		}
	}
	if !shell.Installed(rcPath) {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s에 hook 없음 — 디렉토리 이동 시 자동 실행되지 않는다", rcPath),
			Fix:     "durrrrrenv setup 실행 또는 durrrrrenv hook 출력을 rc에 추가",
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: rcPath,
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath, storePath, shellType, rcPath string) []DiagResult {
	return []DiagResult{
		CheckSettings(cfgPath),
		CheckStoreLoads(storePath),
		CheckStorePermissions(storePath),
		CheckStaleEntries(storePath),
		CheckShellBinary(ctx, cmd, shellType),
		CheckHookInstalled(shellType, rcPath),
	}
}
