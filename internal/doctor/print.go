package doctor

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	warnColor = color.New(color.FgYellow).SprintFunc()
	failColor = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Print는 진단 결과 목록을 w에 출력한다.
func Print(w io.Writer, results []DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s Status) string {
	switch s {
	case StatusOK:
		return okColor("OK")
	case StatusWarn:
		return warnColor("!!")
	case StatusFail:
		return failColor("FAIL")
	default:
		return "??"
	}
}
