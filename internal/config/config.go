package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/i2cjak/durrrrrenv/internal/envfile"
	"github.com/i2cjak/durrrrrenv/internal/trust"
)

// ErrConfig는 설정 파일이 존재하지만 파싱이나 검증에 실패할 때 반환된다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 durrrrrenv 설정 파일의 최상위 구조체다. 모든 항목이 선택이다 —
// 설정 파일이 아예 없어도 도구는 기본값으로 동작해야 한다.
type Config struct {
	Version        int    `toml:"version"`
	EnvFileName    string `toml:"env_file_name"`
	SearchParents  *bool  `toml:"search_parents"`
	MaxSearchDepth int    `toml:"max_search_depth"`
	DefaultShell   string `toml:"default_shell"`
	TrustStore     string `toml:"trust_store"`
}

// Template는 setup이 생성하는 기본 설정 파일 내용이다.
const Template = `version = 1

# 디렉토리별 환경 파일 이름
# env_file_name = ".local_environment"

# 부모 디렉토리로 올라가며 환경 파일을 찾을지 여부와 최대 단계 수
# search_parents = true
# max_search_depth = 16

# hook 명령의 기본 쉘 (zsh | bash | fish)
# default_shell = "zsh"

# trust store 파일 위치 재정의
# trust_store = "~/.config/durrrrrenv/allowed.json"
`

// DefaultPath는 기본 설정 파일 경로를 반환한다.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config.DefaultPath: 설정 디렉토리 확인 실패: %v: %w", err, ErrConfig)
	}
	return filepath.Join(base, "durrrrrenv", "config.toml"), nil
}

// Load는 config.toml을 파싱하여 Config를 반환한다. 파일이 없으면 기본값으로
// 채운 Config를 반환한다 — 설정 없이도 동작하는 것이 기본이다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyDefaults()
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %v: %w", err, ErrConfig)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsSearchParents는 search_parents 설정값을 반환한다.
func (c *Config) IsSearchParents() bool {
	if c.SearchParents == nil {
		return true
	}
	return *c.SearchParents
}

// SearchDepth는 envfile.Locate에 넘길 부모 탐색 단계 수를 반환한다.
// search_parents가 꺼져 있으면 0이다 (시작 디렉토리만 검사).
func (c *Config) SearchDepth() int {
	if !c.IsSearchParents() {
		return 0
	}
	return c.MaxSearchDepth
}

// TrustStorePath는 trust store 파일 경로를 반환한다. 설정이 없으면 기본
// 경로, `~/`로 시작하면 홈 디렉토리 기준으로 확장한다.
func (c *Config) TrustStorePath() (string, error) {
	if c.TrustStore == "" {
		return trust.DefaultPath()
	}
	if strings.HasPrefix(c.TrustStore, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config.TrustStorePath: 홈 디렉토리 확인 실패: %v: %w", err, ErrConfig)
		}
		return filepath.Join(home, c.TrustStore[2:]), nil
	}
	return c.TrustStore, nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.EnvFileName == "" {
		c.EnvFileName = envfile.DefaultName
	}
	if c.SearchParents == nil {
		t := true
		c.SearchParents = &t
	}
	if c.MaxSearchDepth == 0 {
		c.MaxSearchDepth = 16
	}
	if c.DefaultShell == "" {
		c.DefaultShell = "zsh"
	}
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Load: 지원하지 않는 version %d: %w", c.Version, ErrConfig)
	}
	if c.MaxSearchDepth < 0 {
		return fmt.Errorf("config.Load: max_search_depth는 음수일 수 없다 (%d): %w", c.MaxSearchDepth, ErrConfig)
	}
	switch c.DefaultShell {
	case "zsh", "bash", "fish":
	default:
		return fmt.Errorf("config.Load: 지원하지 않는 default_shell %q: %w", c.DefaultShell, ErrConfig)
	}
	return nil
}
