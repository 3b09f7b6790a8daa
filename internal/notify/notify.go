// Package notify provides best-effort user notifications. A Notifier never
// returns an error: a failing sink must not abort the operation that
// reported through it.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Notifier는 사용자에게 메시지를 표시하는 sink다.
type Notifier interface {
	// Info는 정보 메시지를 표시한다.
	Info(msg string)
	// Error는 에러 메시지를 표시한다.
	Error(msg string)
}

// Terminal은 터미널에 색상 메시지를 출력하는 Notifier다.
type Terminal struct {
	Out io.Writer
	Err io.Writer

	mu sync.Mutex
}

var _ Notifier = (*Terminal)(nil)

var (
	infoPrefix  = color.New(color.FgCyan).SprintFunc()
	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()
)

// NewTerminal은 stdout/stderr에 출력하는 Terminal을 만든다.
func NewTerminal() *Terminal {
	return &Terminal{Out: os.Stdout, Err: os.Stderr}
}

// Info는 Out에 메시지를 출력한다.
func (t *Terminal) Info(msg string) {
	t.write(t.Out, infoPrefix("▸"), msg)
}

// Error는 Err에 메시지를 출력한다.
func (t *Terminal) Error(msg string) {
	t.write(t.Err, errorPrefix("✗"), msg)
}

func (t *Terminal) write(w io.Writer, prefix, msg string) {
	if w == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(w, "%s %s\n", prefix, msg) // 알림 실패는 무시
}

// Discard는 모든 메시지를 버리는 Notifier다.
type Discard struct{}

// Info는 아무것도 하지 않는다.
func (Discard) Info(string) {}

// Error는 아무것도 하지 않는다.
func (Discard) Error(string) {}
