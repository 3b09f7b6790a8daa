// Package placeholder expands {name} tokens in action command and cwd
// templates. Expansion is a single textual pass: substituted values are
// never re-scanned, and unknown tokens are left as they are.
package placeholder

import (
	"path/filepath"
	"runtime"
	"strings"
)

// 지원하는 placeholder.
const (
	Path      = "{path}"
	File      = "{file}"
	Filename  = "{filename}"
	Dir       = "{dir}"
	Files     = "{files}"
	Workspace = "{workspace}"
)

// Context는 한 번의 실행에 대한 치환 입력값이다. 실행마다 새로 만들고 재사용하지 않는다.
type Context struct {
	// TargetPath는 선택된 항목의 절대 경로다.
	TargetPath string
	// IsDirectory는 TargetPath가 디렉토리인지 여부다.
	IsDirectory bool
	// AdditionalPaths는 다중 선택된 경로 목록이다 (비어 있을 수 있음).
	AdditionalPaths []string
	// WorkspaceRoot는 프로젝트 루트, 없으면 기본 작업 디렉토리다.
	WorkspaceRoot string
	// Quoting은 치환값을 감쌀 셸 문법이다. 0이면 실행 중인 OS 기준.
	Quoting Quoting
}

// Files는 {files}에 들어갈 경로 목록이다. 다중 선택이 없으면 TargetPath 하나.
func (c Context) Files() []string {
	if len(c.AdditionalPaths) > 0 {
		return c.AdditionalPaths
	}
	return []string{c.TargetPath}
}

// Resolve는 template의 placeholder를 c의 값으로 치환한다.
//
// quote가 true이면 각 값을 큰따옴표로 감싸고, template에 중괄호가 전혀 없으면
// 따옴표 친 {path}를 끝에 덧붙인다. quote가 false이면 값을 그대로 넣고
// 결과 양끝의 따옴표 한 쌍을 제거한다.
func Resolve(template string, c Context, quote bool) string {
	wrap := func(s string) string { return s }
	if quote {
		wrap = c.Quoting.Quote
	}

	files := c.Files()
	wrapped := make([]string, len(files))
	for i, f := range files {
		wrapped[i] = wrap(f)
	}

	r := strings.NewReplacer(
		Path, wrap(c.TargetPath),
		Filename, wrap(filepath.Base(c.TargetPath)),
		File, wrap(filepath.Base(c.TargetPath)),
		Dir, wrap(filepath.Dir(c.TargetPath)),
		Files, strings.Join(wrapped, " "),
		Workspace, wrap(c.WorkspaceRoot),
	)
	out := r.Replace(template)

	if !quote {
		return stripQuotes(strings.TrimSpace(out))
	}
	if !strings.ContainsAny(template, "{}") {
		out = out + " " + c.Quoting.Quote(c.TargetPath)
	}
	return out
}

// Command는 실행할 명령 문자열을 만든다.
func Command(template string, c Context) string {
	return Resolve(template, c, true)
}

// Directory는 cwd template을 따옴표 없는 경로로 만든다.
func Directory(template string, c Context) string {
	return Resolve(template, c, false)
}

// Quoting은 명령을 해석할 셸의 따옴표 문법이다.
type Quoting int

const (
	// QuotePlatform은 Windows에서 QuoteCmd, 그 밖에서 QuotePOSIX다.
	QuotePlatform Quoting = iota
	// QuotePOSIX는 sh 계열 셸과 내장 인터프리터용이다.
	QuotePOSIX
	// QuoteCmd는 cmd.exe /c 용이다.
	QuoteCmd
)

// Quote는 q 문법으로 s를 큰따옴표로 감싼다.
func (q Quoting) Quote(s string) string {
	if q == QuotePlatform {
		q = QuotePOSIX
		if runtime.GOOS == "windows" {
			q = QuoteCmd
		}
	}
	if q == QuoteCmd {
		// cmd.exe는 큰따옴표 안의 backslash를 escape로 읽지 않는다. 경로에는 '"'가 올 수 없다.
		return `"` + s + `"`
	}
	return quotePOSIX(s)
}

// Quote는 실행 중인 OS의 기본 셸 문법으로 s를 감싼다.
func Quote(s string) string {
	return QuotePlatform.Quote(s)
}

// quotePOSIX는 큰따옴표 안에서 특수한 문자를 escape한다.
func quotePOSIX(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
