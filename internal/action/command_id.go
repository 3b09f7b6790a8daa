package action

// Namespace는 등록되는 모든 명령 id의 접두사다.
const Namespace = "actions"

// 고정 명령 id.
const (
	CommandShowExplorerActions = Namespace + ".showExplorerActions"
	CommandShowSCMActions      = Namespace + ".showScmActions"
	CommandShowEditorActions   = Namespace + ".showEditorActions"
	CommandOpenSettings        = Namespace + ".openSettings"
)

// CommandID는 작업에 바인딩되는 명령 id(<namespace>.<id>)다.
func CommandID(id string) string {
	return Namespace + "." + id
}

// PickerCommand는 컨텍스트별 picker 명령 id다.
func PickerCommand(c Context) string {
	switch c {
	case ContextSCM:
		return CommandShowSCMActions
	case ContextEditor:
		return CommandShowEditorActions
	default:
		return CommandShowExplorerActions
	}
}
