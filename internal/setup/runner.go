package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/cmdexec"
	"github.com/hbjs97/actions/internal/doctor"
	"github.com/hbjs97/actions/internal/settings"
)

// Session은 settings 메시지를 처리하는 쪽이다. *settings.Editor가 구현한다.
type Session interface {
	Handle(req settings.Message) []settings.Message
}

// errRejected는 editor가 요청을 거부했음을 나타낸다. 사유는 이미 notifier로 표시되었다.
var errRejected = errors.New("요청 거부")

// Runner는 interactive 편집기의 진입점이다.
type Runner struct {
	CfgPath    string
	Commander  cmdexec.Commander
	Editor     Session
	FormRunner FormRunner
	Out        io.Writer
}

// Run은 편집 플로우를 실행한다. 설정 파일이 없으면 첫 실행 플로우로 시작한다.
func (r *Runner) Run(ctx context.Context) error {
	_, err := os.Stat(r.CfgPath)
	if os.IsNotExist(err) {
		return r.runFirstTime(ctx)
	}
	if err != nil {
		return fmt.Errorf("setup.Run: %w", err)
	}
	return r.runExisting(ctx)
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) runFirstTime(ctx context.Context) error {
	fmt.Fprintln(r.out(), "actions 초기 설정을 시작합니다.")

	var list []action.Action
	for {
		input, err := r.FormRunner.RunActionForm(nil, action.IDs(list))
		if err != nil {
			return quitOnAbort(err)
		}
		next, err := r.send(settings.Message{Command: settings.CommandAdd, Action: ptr(input.Action())})
		if err == nil {
			list = next
		} else if !errors.Is(err, errRejected) {
			return err
		}

		more, err := r.FormRunner.RunAddMore()
		if err != nil || !more {
			break
		}
	}

	fmt.Fprintf(r.out(), "설정 파일이 저장되었습니다: %s\n", r.CfgPath)
	r.runDoctor(ctx)
	return nil
}

// runExisting은 기존 설정이 있을 때의 CRUD 루프다. 끝내기를 고를 때까지 반복한다.
func (r *Runner) runExisting(ctx context.Context) error {
	list, err := r.send(settings.Message{Command: settings.CommandLoad})
	if err != nil {
		return err
	}

	for {
		r.printList(list)

		op, err := r.FormRunner.RunOperationSelect(len(list) > 0)
		if err != nil {
			return quitOnAbort(err)
		}

		var next []action.Action
		switch op {
		case OpAdd:
			next, err = r.addAction(list)
		case OpEdit:
			next, err = r.editAction(list)
		case OpDelete:
			next, err = r.deleteAction(list)
		case OpDone:
			r.runDoctor(ctx)
			return nil
		default:
			return fmt.Errorf("setup: 알 수 없는 작업: %s", op)
		}

		switch {
		case err == nil:
			if next != nil {
				list = next
			}
		case errors.Is(err, errRejected):
			// 목록은 그대로다
		default:
			return quitOnAbort(err)
		}
	}
}

func (r *Runner) addAction(list []action.Action) ([]action.Action, error) {
	input, err := r.FormRunner.RunActionForm(nil, action.IDs(list))
	if err != nil {
		return nil, err
	}
	return r.send(settings.Message{Command: settings.CommandAdd, Action: ptr(input.Action())})
}

func (r *Runner) editAction(list []action.Action) ([]action.Action, error) {
	id, err := r.FormRunner.RunActionSelect(list)
	if err != nil {
		return nil, err
	}
	existing, ok := action.Find(list, id)
	if !ok {
		return nil, fmt.Errorf("setup: 작업을 찾을 수 없음: %s", id)
	}

	input, err := r.FormRunner.RunActionForm(InputFromAction(existing), action.IDs(list))
	if err != nil {
		return nil, err
	}
	input.ID = existing.ID
	return r.send(settings.Message{Command: settings.CommandUpdate, Action: ptr(input.Action())})
}

func (r *Runner) deleteAction(list []action.Action) ([]action.Action, error) {
	id, err := r.FormRunner.RunActionSelect(list)
	if err != nil {
		return nil, err
	}

	confirmed, err := r.FormRunner.RunConfirm(fmt.Sprintf("작업 %q을 정말 삭제하시겠습니까?", id))
	if err != nil {
		return nil, err
	}
	if !confirmed {
		fmt.Fprintln(r.out(), "삭제가 취소되었습니다.")
		return nil, nil
	}
	return r.send(settings.Message{Command: settings.CommandDelete, ID: id})
}

// send는 요청을 보내고 마지막 actionsLoaded의 목록을 반환한다.
func (r *Runner) send(req settings.Message) ([]action.Action, error) {
	var list []action.Action
	for _, m := range r.Editor.Handle(req) {
		switch m.Command {
		case settings.CommandError:
			return nil, fmt.Errorf("setup.%s: %w: %s", req.Command, errRejected, m.Error)
		case settings.CommandActionsLoaded:
			list = m.Actions
			if list == nil {
				list = []action.Action{}
			}
		}
	}
	return list, nil
}

func (r *Runner) printList(list []action.Action) {
	if len(list) == 0 {
		fmt.Fprintln(r.out(), "설정된 작업이 없습니다.")
		return
	}
	fmt.Fprintln(r.out(), "작업 목록:")
	for _, a := range list {
		var flags []string
		if !a.IsEnabled() {
			flags = append(flags, "비활성")
		}
		if err := a.Validate(); err != nil {
			flags = append(flags, "잘못된 정의")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " [" + strings.Join(flags, ", ") + "]"
		}
		fmt.Fprintf(r.out(), "  - %s: %s (%s)%s\n", a.ID, a.Label, contextsString(a), suffix)
	}
}

func contextsString(a action.Action) string {
	cs := a.EffectiveContexts()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// runDoctor는 편집 완료 후 설정을 진단한다.
func (r *Runner) runDoctor(ctx context.Context) {
	if r.Commander == nil {
		return
	}
	fmt.Fprintln(r.out(), "\n설정 진단 실행 중...")
	doctor.Print(r.out(), doctor.RunAll(ctx, r.Commander, r.CfgPath))
}

// quitOnAbort는 사용자가 폼을 취소한 경우를 정상 종료로 바꾼다.
func quitOnAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func ptr(a action.Action) *action.Action {
	return &a
}
