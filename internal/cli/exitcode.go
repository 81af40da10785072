package cli

import (
	"errors"

	"github.com/i2cjak/durrrrrenv/internal/directive"
	"github.com/i2cjak/durrrrrenv/internal/script"
)

// ExitCode는 durrrrrenv의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다. 미승인 파일 발견도 여기 포함된다 —
	// 승인 전 상태는 에러가 아니라 평범한 결과다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitParse는 환경 파일 파싱 에러다.
	ExitParse ExitCode = 2
	// ExitCompile는 스크립트 생성 에러다.
	ExitCompile ExitCode = 3
	// ExitStorage는 trust store 접근 에러다.
	ExitStorage ExitCode = 4
	// ExitPathResolution은 디렉토리 경로 정규화 에러다.
	ExitPathResolution ExitCode = 5
	// ExitConfigError는 설정 파일 에러다.
	ExitConfigError ExitCode = 6
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, directive.ErrSourceArgs),
		errors.Is(err, directive.ErrVenvArgs),
		errors.Is(err, directive.ErrEmptySubstitution),
		errors.Is(err, directive.ErrUnknownDirective):
		return ExitParse
	case errors.Is(err, script.ErrMissingActivate),
		errors.Is(err, script.ErrHomeDir):
		return ExitCompile
	case errors.Is(err, ErrStorage):
		return ExitStorage
	case errors.Is(err, ErrPathResolution):
		return ExitPathResolution
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
