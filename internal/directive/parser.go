package directive

import (
	"errors"
	"fmt"
	"strings"
)

// 파싱 실패 종류. 호출부는 errors.Is로 구분한다.
var (
	// ErrSourceArgs는 source 지시어의 인자가 정확히 하나가 아닐 때 반환된다.
	ErrSourceArgs = errors.New("source 지시어는 인자를 정확히 하나 받는다")
	// ErrVenvArgs는 python_venv 지시어의 인자가 두 개 이상일 때 반환된다.
	ErrVenvArgs = errors.New("python_venv 지시어는 인자를 0개 또는 1개 받는다")
	// ErrEmptySubstitution은 process substitution 본문이 비어 있을 때 반환된다.
	ErrEmptySubstitution = errors.New("process substitution 본문이 비어 있다")
	// ErrUnknownDirective는 어떤 지시어 형태와도 일치하지 않는 줄에 반환된다.
	ErrUnknownDirective = errors.New("알 수 없는 지시어")
)

// defaultVenvDir은 python_venv의 path 생략 시 기본값이다.
const defaultVenvDir = ".venv"

// Parse는 환경 파일 내용을 순서를 보존한 지시어 목록으로 변환한다.
// 줄 단위로 처리하며 빈 줄과 #로 시작하는 줄은 건너뛴다. 한 줄이라도
// 실패하면 1-based 줄 번호와 줄 내용을 붙여 전체 파싱을 중단한다 —
// 부분 목록은 절대 반환하지 않는다.
func Parse(content string) ([]Directive, error) {
	var directives []Directive
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("directive.Parse: %d번째 줄 %q: %w", i+1, line, err)
		}
		directives = append(directives, d)
	}
	return directives, nil
}

// parseLine은 trim된 한 줄을 지시어로 변환한다. process substitution 검사가
// 일반 source 검사보다 먼저다 — `source <(...)` 줄도 source로 시작하므로
// 순서를 바꾸면 오분류된다.
func parseLine(line string) (Directive, error) {
	if strings.HasPrefix(line, "source") && strings.Contains(line, "<(") && strings.Contains(line, ")") {
		return parseProcessSubstitution(line)
	}
	if strings.HasPrefix(line, "source") {
		return parseSource(line)
	}
	if strings.HasPrefix(line, "python_venv") {
		return parsePythonVenv(line)
	}
	return nil, ErrUnknownDirective
}

func parseSource(line string) (Directive, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, ErrSourceArgs
	}
	return SourceFile{Path: fields[1]}, nil
}

func parsePythonVenv(line string) (Directive, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return PythonVenv{Path: defaultVenvDir}, nil
	case 2:
		return PythonVenv{Path: fields[1]}, nil
	default:
		return nil, ErrVenvArgs
	}
}

// parseProcessSubstitution은 첫 `<(`와 마지막 `)` 사이를 명령으로 잘라낸다.
// 마지막 `)` 뒤에 텍스트가 더 있어도 무시한다.
func parseProcessSubstitution(line string) (Directive, error) {
	start := strings.Index(line, "<(")
	end := strings.LastIndex(line, ")")
	if end <= start+2 {
		return nil, ErrEmptySubstitution
	}
	return ProcessSubstitution{Command: strings.TrimSpace(line[start+2 : end])}, nil
}
