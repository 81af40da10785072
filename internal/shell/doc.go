// Package shell provides shell integration for automatic environment loading.
// It generates shell hook snippets (chpwd for Zsh, PROMPT_COMMAND for Bash,
// --on-variable for Fish) that eval durrrrrenv check on directory change, and
// installs them into the user's shell rc file.
package shell
