package cli

import (
	"github.com/i2cjak/durrrrrenv/internal/config"
	"github.com/i2cjak/durrrrrenv/internal/directive"
	"github.com/i2cjak/durrrrrenv/internal/script"
	"github.com/i2cjak/durrrrrenv/internal/trust"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrStorage는 trust store를 읽거나 쓰거나 파싱하지 못할 때의 sentinel error다.
	ErrStorage = trust.ErrStorage
	// ErrPathResolution은 승인 대상 디렉토리의 경로 정규화 실패 sentinel error다.
	ErrPathResolution = trust.ErrPathResolution
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrUnknownDirective는 환경 파일에 알 수 없는 지시어가 있을 때의 sentinel error다.
	ErrUnknownDirective = directive.ErrUnknownDirective
	// ErrMissingActivate는 python venv의 activate 스크립트가 없을 때의 sentinel error다.
	ErrMissingActivate = script.ErrMissingActivate
)
