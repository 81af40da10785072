package shell

// HookSnippet는 셸 디렉토리 변경 hook 스니펫을 반환한다. 각 스니펫은
// 디렉토리 변경 시 durrrrrenv check의 stdout을 eval한다. stderr는 일부러
// 가리지 않는다 — 미승인 환경 파일 안내가 사용자에게 보여야 한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# durrrrrenv shell integration (zsh)
_durrrrrenv_chpwd() {
  eval "$(durrrrrenv check)"
}
chpwd_functions+=(_durrrrrenv_chpwd)
_durrrrrenv_chpwd
`
	case "bash":
		return `# durrrrrenv shell integration (bash)
_durrrrrenv_prompt_command() {
  if [ "$PWD" != "${_DURRRRRENV_LAST_PWD-}" ]; then
    _DURRRRRENV_LAST_PWD="$PWD"
    eval "$(durrrrrenv check)"
  fi
}
PROMPT_COMMAND="_durrrrrenv_prompt_command;${PROMPT_COMMAND}"
`
	case "fish":
		return `# durrrrrenv shell integration (fish)
function _durrrrrenv_chpwd --on-variable PWD
  eval (durrrrrenv check)
end
_durrrrrenv_chpwd
`
	default:
		return ""
	}
}
