package settings

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxLine은 한 줄 메시지의 최대 크기다.
const maxLine = 1 << 20

// ServeStream은 r에서 JSON lines 요청을 읽어 w에 응답을 쓴다.
// 시작 시 actionsLoaded를 한 번 보낸다. r이 EOF이거나 ctx가 끝나면 반환한다.
func (e *Editor) ServeStream(ctx context.Context, r io.Reader, w io.Writer) error {
	enc := json.NewEncoder(w)
	send := func(msgs ...Message) error {
		for _, m := range msgs {
			if err := enc.Encode(m); err != nil {
				return fmt.Errorf("settings.ServeStream: %w", err)
			}
		}
		return nil
	}

	if err := send(e.Open()); err != nil {
		return err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var req Message
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			if err := send(Message{Command: CommandError, Error: "잘못된 메시지: " + err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := send(e.Handle(req)...); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("settings.ServeStream: %w", err)
	}
	return nil
}
