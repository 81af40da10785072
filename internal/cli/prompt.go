package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// Prompter는 승인 확인 프롬프트를 추상화하는 interface다.
// 테스트에서는 가짜 구현으로 응답을 주입한다.
type Prompter interface {
	// Confirm은 title을 보여주고 사용자의 예/아니오 응답을 받는다.
	Confirm(title string) (bool, error)
}

// HuhPrompter는 charmbracelet/huh 기반의 Prompter 구현이다.
// 프롬프트는 stderr에 그린다 — stdout은 셸이 eval할 스크립트 전용이다.
type HuhPrompter struct{}

var _ Prompter = (*HuhPrompter)(nil)

// Confirm은 확인 프롬프트를 표시한다. 기본 응답은 아니오다.
func (h *HuhPrompter) Confirm(title string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&confirm),
	)).WithOutput(os.Stderr)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("cli.Confirm: %w", err)
	}
	return confirm, nil
}
