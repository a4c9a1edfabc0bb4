package editor

// Mode is the primary editing mode.
type Mode int

const (
	ModeNavigate Mode = iota
	ModeEdit
	ModeConnect
	ModeOpenFile
	ModeSaveFile
	ModeConfirmDelete
)

func (m Mode) String() string {
	switch m {
	case ModeNavigate:
		return "NAVIGATE"
	case ModeEdit:
		return "EDIT"
	case ModeConnect:
		return "CONNECT"
	case ModeOpenFile:
		return "OPEN FILE"
	case ModeSaveFile:
		return "SAVE FILE"
	case ModeConfirmDelete:
		return "CONFIRM DELETE"
	}
	return "UNKNOWN"
}

// MessageType for status messages
type MessageType int

const (
	MsgInfo    MessageType = iota // Informative, no flash
	MsgError                      // Errors, flash
	MsgSuccess                    // State changes, flash
	MsgWarning                    // Warnings, flash
)

func (t MessageType) String() string {
	switch t {
	case MsgError:
		return "error"
	case MsgSuccess:
		return "success"
	case MsgWarning:
		return "warning"
	}
	return "info"
}
