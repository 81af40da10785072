package trust

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrStorage는 trust store 문서를 읽거나 쓰거나 파싱하지 못할 때 반환된다.
var ErrStorage = errors.New("trust store 접근 실패")

// ErrPathResolution은 승인 대상 디렉토리의 경로 정규화가 실패할 때 반환된다.
var ErrPathResolution = errors.New("디렉토리 경로 정규화 실패")

// Store는 디렉토리 fingerprint -> 승인 기록 매핑이다.
// 매 실행마다 Load로 새로 읽고, 변경 시 Save로 전체를 다시 쓴다.
type Store struct {
	AllowedDirs map[string]Record `json:"allowed_dirs"`
}

// Record는 하나의 승인 이벤트다.
type Record struct {
	// Path는 승인 시점에 정규화된 디렉토리 절대 경로다.
	Path string `json:"path"`
	// FileHash는 승인된 .local_environment 내용의 SHA-256 hex다.
	FileHash string `json:"file_hash"`
	// AllowedAt은 승인 시각 (unix epoch 초)이다.
	AllowedAt int64 `json:"allowed_at"`
}

// New는 빈 Store를 생성한다.
func New() *Store {
	return &Store{AllowedDirs: make(map[string]Record)}
}

// DefaultPath는 기본 trust store 파일 경로를 반환한다.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("trust.DefaultPath: 설정 디렉토리 확인 실패: %v: %w", err, ErrStorage)
	}
	return filepath.Join(base, "durrrrrenv", "allowed.json"), nil
}

// Load는 trust store 문서를 파싱한다. 파일이 없으면 빈 Store를 반환한다.
// 파일이 있는데 파싱할 수 없으면 에러다 — 조용히 빈 store로 대체하면
// 모든 디렉토리의 보호가 사라진 것을 사용자가 알 수 없다.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("trust.Load: %v: %w", err, ErrStorage)
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("trust.Load: %s 파싱 실패 (%v): %w", path, err, ErrStorage)
	}
	if s.AllowedDirs == nil {
		s.AllowedDirs = make(map[string]Record)
	}
	return &s, nil
}

// Save는 trust store 전체를 JSON 파일로 저장한다 (0600 권한).
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("trust.Save: 직렬화 실패 (%v): %w", err, ErrStorage)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("trust.Save: 저장 디렉토리 생성 실패 (%v): %w", err, ErrStorage)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("trust.Save: %v: %w", err, ErrStorage)
	}
	return nil
}

// IsAuthorized는 dir이 승인되어 있고 content가 승인 당시와 byte 단위로
// 동일한지 확인한다. 부작용 없음. 미승인 디렉토리는 false일 뿐 에러가 아니다.
func (s *Store) IsAuthorized(dir, content string) bool {
	rec, ok := s.AllowedDirs[Fingerprint(dir)]
	if !ok {
		return false
	}
	return rec.FileHash == ContentDigest(content)
}

// Approve는 dir에 대해 content를 승인한다. 기존 기록은 통째로 교체된다.
// 디렉토리가 존재하지 않아 정규화가 불가능하면 ErrPathResolution이다.
func (s *Store) Approve(dir, content string) error {
	canon, err := canonicalize(dir)
	if err != nil {
		return fmt.Errorf("trust.Approve: %s (%v): %w", dir, err, ErrPathResolution)
	}
	s.AllowedDirs[Fingerprint(dir)] = Record{
		Path:      canon,
		FileHash:  ContentDigest(content),
		AllowedAt: time.Now().Unix(),
	}
	return nil
}

// Revoke는 dir의 승인 기록을 제거한다. 없는 키 제거는 no-op이다.
func (s *Store) Revoke(dir string) {
	delete(s.AllowedDirs, Fingerprint(dir))
}

// Fingerprint는 정규화된 디렉토리 경로의 SHA-256 hex를 반환한다.
// 같은 물리 디렉토리를 가리키는 symlink/상대 경로는 같은 키로 수렴한다.
// 정규화가 실패하면 (디렉토리 없음) 주어진 경로 문자열을 그대로 해시한다.
func Fingerprint(path string) string {
	canon, err := canonicalize(path)
	if err != nil {
		canon = path
	}
	sum := sha256.Sum256([]byte(canon))
	return hex.EncodeToString(sum[:])
}

// ContentDigest는 환경 파일 내용의 SHA-256 hex를 반환한다.
func ContentDigest(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ValidatePermissions는 trust store 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidatePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("trust.ValidatePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("trust.ValidatePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

// canonicalize는 경로를 절대 경로로 만들고 symlink를 해석한다.
// 경로가 존재하지 않으면 에러를 반환한다.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
