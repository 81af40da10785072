package directive_test

import (
	"testing"

	"github.com/i2cjak/durrrrrenv/internal/directive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SourceFile(t *testing.T) {
	ds, err := directive.Parse("source ~/.bashrc")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, directive.SourceFile{Path: "~/.bashrc"}, ds[0])
}

func TestParse_SourceArity(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no argument", "source"},
		{"two arguments", "source a b"},
		{"three arguments", "source a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := directive.Parse(tt.line)
			assert.ErrorIs(t, err, directive.ErrSourceArgs)
		})
	}
}

func TestParse_PythonVenvDefault(t *testing.T) {
	ds, err := directive.Parse("python_venv")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, directive.PythonVenv{Path: ".venv"}, ds[0])
}

func TestParse_PythonVenvCustomPath(t *testing.T) {
	ds, err := directive.Parse("python_venv venv")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, directive.PythonVenv{Path: "venv"}, ds[0])
}

func TestParse_PythonVenvTooManyArgs(t *testing.T) {
	_, err := directive.Parse("python_venv a b")
	assert.ErrorIs(t, err, directive.ErrVenvArgs)
}

func TestParse_ProcessSubstitution(t *testing.T) {
	ds, err := directive.Parse("source <(west completion zsh)")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, directive.ProcessSubstitution{Command: "west completion zsh"}, ds[0])
}

func TestParse_ProcessSubstitutionBeatsPlainSource(t *testing.T) {
	// The line starts with "source" but must not become a SourceFile.
	ds, err := directive.Parse("source <(kubectl completion zsh)")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.IsType(t, directive.ProcessSubstitution{}, ds[0])
}

func TestParse_ProcessSubstitutionTrailingTextIgnored(t *testing.T) {
	ds, err := directive.Parse("source <(foo bar) leftover text")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, directive.ProcessSubstitution{Command: "foo bar"}, ds[0])
}

func TestParse_ProcessSubstitutionNestedParens(t *testing.T) {
	// The body ends at the LAST closing paren, so nesting survives.
	ds, err := directive.Parse("source <(echo $(date))")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, directive.ProcessSubstitution{Command: "echo $(date)"}, ds[0])
}

func TestParse_ProcessSubstitutionEmpty(t *testing.T) {
	_, err := directive.Parse("source <()")
	assert.ErrorIs(t, err, directive.ErrEmptySubstitution)
}

func TestParse_ProcessSubstitutionClosingParenBeforeOpening(t *testing.T) {
	_, err := directive.Parse("source ) <(x")
	assert.ErrorIs(t, err, directive.ErrEmptySubstitution)
}

func TestParse_UnclosedSubstitutionFallsBackToSource(t *testing.T) {
	// Without a closing paren the substitution branch never triggers.
	ds, err := directive.Parse("source <(x")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, directive.SourceFile{Path: "<(x"}, ds[0])
}

func TestParse_UnknownDirective(t *testing.T) {
	_, err := directive.Parse("export FOO=bar")
	assert.ErrorIs(t, err, directive.ErrUnknownDirective)
}

func TestParse_EmptyAndComments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t\n  "},
		{"comment only", "# comment only"},
		{"indented comment", "   # indented comment"},
		{"comments and blanks", "# a\n\n# b\n   \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := directive.Parse(tt.content)
			require.NoError(t, err)
			assert.Empty(t, ds)
		})
	}
}

func TestParse_MultiLinePreservesOrder(t *testing.T) {
	content := `
# shell environment for this project
source ~/.bashrc

python_venv .venv
source <(west completion zsh)
`
	ds, err := directive.Parse(content)
	require.NoError(t, err)
	require.Len(t, ds, 3)
	assert.Equal(t, directive.SourceFile{Path: "~/.bashrc"}, ds[0])
	assert.Equal(t, directive.PythonVenv{Path: ".venv"}, ds[1])
	assert.Equal(t, directive.ProcessSubstitution{Command: "west completion zsh"}, ds[2])
}

func TestParse_ErrorCarriesLineNumber(t *testing.T) {
	content := "source ~/.bashrc\n# fine\nbogus line here\n"
	_, err := directive.Parse(content)
	require.Error(t, err)
	assert.ErrorIs(t, err, directive.ErrUnknownDirective)
	assert.Contains(t, err.Error(), "3번째 줄")
	assert.Contains(t, err.Error(), "bogus line here")
}

func TestParse_AbortsWithoutPartialResult(t *testing.T) {
	content := "source ~/.bashrc\nbogus\npython_venv\n"
	ds, err := directive.Parse(content)
	require.Error(t, err)
	assert.Nil(t, ds) // never a partial list alongside an error
}

func TestParse_WindowsLineEndings(t *testing.T) {
	ds, err := directive.Parse("source ~/.bashrc\r\npython_venv\r\n")
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, directive.SourceFile{Path: "~/.bashrc"}, ds[0])
	assert.Equal(t, directive.PythonVenv{Path: ".venv"}, ds[1])
}
