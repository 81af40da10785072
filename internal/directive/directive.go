package directive

// Directive는 환경 파일의 한 줄이 파싱된 결과다. SourceFile, PythonVenv,
// ProcessSubstitution 세 형태로 닫혀 있고, compiler는 이 세 형태를 모두
// 처리해야 한다.
type Directive interface {
	directive()
}

// SourceFile은 `source <path>` 지시어다. Path는 파싱 시점에는 해석하지 않는다.
type SourceFile struct {
	Path string
}

// PythonVenv는 `python_venv [path]` 지시어다. path를 생략하면 ".venv"다.
type PythonVenv struct {
	Path string
}

// ProcessSubstitution은 `source <(command)` 지시어다. Command는 검사 없이
// 그대로 쉘에 전달된다.
type ProcessSubstitution struct {
	Command string
}

func (SourceFile) directive()          {}
func (PythonVenv) directive()          {}
func (ProcessSubstitution) directive() {}

// String은 status 출력용 표기를 돌려준다. 원본 줄을 복원하는 것이 아니라
// 파싱된 의미를 정규화해 보여준다.
func (d SourceFile) String() string { return "source " + d.Path }

func (d PythonVenv) String() string { return "python_venv " + d.Path }

func (d ProcessSubstitution) String() string { return "source <(" + d.Command + ")" }
