package notify_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/hbjs97/actions/internal/notify"
	"github.com/stretchr/testify/assert"
)

func TestTerminal(t *testing.T) {
	color.NoColor = true

	var out, errOut bytes.Buffer
	n := &notify.Terminal{Out: &out, Err: &errOut}
	n.Info("실행 중: Build")
	n.Error("Build 실패: exit status 1")

	assert.Equal(t, "▸ 실행 중: Build\n", out.String())
	assert.Equal(t, "✗ Build 실패: exit status 1\n", errOut.String())
}

func TestTerminal_NilWriter(t *testing.T) {
	n := &notify.Terminal{}
	assert.NotPanics(t, func() {
		n.Info("x")
		n.Error("y")
	})
}

func TestDiscard(t *testing.T) {
	var n notify.Notifier = notify.Discard{}
	assert.NotPanics(t, func() {
		n.Info("x")
		n.Error("y")
	})
}
