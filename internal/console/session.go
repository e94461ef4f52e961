package console

// Mode is the state of the Edit-Session.
type Mode int

const (
	ModeCreating Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "creating"
}

// Submit button labels.
const (
	LabelAdd    = "Add Employee"
	LabelUpdate = "Update Employee"
)

// Session is either Creating (no target) or Editing(id).
// The zero value is Creating.
type Session struct {
	mode Mode
	id   int64
}

func Creating() Session { return Session{} }

func Editing(id int64) Session { return Session{mode: ModeEditing, id: id} }

func (s Session) Mode() Mode { return s.mode }

// Target returns the id being edited; ok is false while creating.
func (s Session) Target() (id int64, ok bool) {
	return s.id, s.mode == ModeEditing
}

// SubmitLabel is the text of the form's submit control in this state.
func (s Session) SubmitLabel() string {
	if s.mode == ModeEditing {
		return LabelUpdate
	}
	return LabelAdd
}
