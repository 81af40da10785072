package envfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultName은 디렉토리별 환경 파일의 기본 이름이다.
const DefaultName = ".local_environment"

// Locate는 startDir에서 시작해 부모 방향으로 올라가며 name 파일을 가진
// 가장 가까운 디렉토리를 찾는다. maxDepth는 올라갈 부모 단계의 최대 수다
// (0이면 startDir만 검사). 파일시스템 루트에 닿으면 멈춘다. 찾지 못한
// 것은 found=false일 뿐 에러가 아니다.
func Locate(startDir, name string, maxDepth int) (dir string, found bool, err error) {
	cur, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("envfile.Locate: %s: %w", startDir, err)
	}
	for depth := 0; ; depth++ {
		if _, err := os.Stat(filepath.Join(cur, name)); err == nil {
			return cur, true, nil
		}
		if depth >= maxDepth {
			return "", false, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			// 루트 도달
			return "", false, nil
		}
		cur = parent
	}
}

// Read는 dir 안의 name 파일 내용을 반환한다.
func Read(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("envfile.Read: %w", err)
	}
	return string(data), nil
}
