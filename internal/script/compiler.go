package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/i2cjak/durrrrrenv/internal/directive"
)

// ErrMissingActivate는 python venv의 bin/activate가 존재하지 않을 때 반환된다.
var ErrMissingActivate = errors.New("python venv activate 스크립트 없음")

// ErrHomeDir는 ~/ 경로 해석에 필요한 홈 디렉토리를 확인하지 못할 때 반환된다.
var ErrHomeDir = errors.New("홈 디렉토리 확인 실패")

// Compile은 지시어 목록을 쉘에서 eval할 스크립트 텍스트로 변환한다.
// 지시어당 한 줄, 입력 순서 그대로, 각 줄은 개행으로 끝난다. 하나라도
// 실패하면 빈 문자열과 에러를 반환한다 — 부분 스크립트는 내보내지 않는다.
func Compile(directives []directive.Directive, baseDir string) (string, error) {
	var b strings.Builder
	for _, d := range directives {
		line, err := compileOne(d, baseDir)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func compileOne(d directive.Directive, baseDir string) (string, error) {
	switch d := d.(type) {
	case directive.SourceFile:
		resolved, err := resolve(d.Path, baseDir)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("source '%s'", resolved), nil

	case directive.PythonVenv:
		resolved, err := resolve(d.Path, baseDir)
		if err != nil {
			return "", err
		}
		activate := filepath.Join(resolved, "bin", "activate")
		if _, err := os.Stat(activate); err != nil {
			return "", fmt.Errorf("script.Compile: %s: %w", activate, ErrMissingActivate)
		}
		return fmt.Sprintf("source '%s'", activate), nil

	case directive.ProcessSubstitution:
		// 명령 텍스트는 검증 없이 그대로 내보낸다. 해석은 호출한 쉘의 몫이다.
		return fmt.Sprintf("source <(%s)", d.Command), nil

	default:
		return "", fmt.Errorf("script.Compile: 지원하지 않는 지시어 타입 %T", d)
	}
}

// resolve는 지시어의 경로 인자를 baseDir 기준으로 해석한다.
//   - `~/rest` : 홈 디렉토리 아래로 해석
//   - `~other` : 그대로 반환 (쉘이 해석하도록 남겨둔다)
//   - `/abs`   : 그대로 사용
//   - 그 외    : baseDir에 join
func resolve(path, baseDir string) (string, error) {
	switch {
	case strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("script.Compile: %v: %w", err, ErrHomeDir)
		}
		return filepath.Join(home, path[2:]), nil
	case strings.HasPrefix(path, "~"):
		return path, nil
	case strings.HasPrefix(path, "/"):
		return path, nil
	default:
		return filepath.Join(baseDir, path), nil
	}
}
