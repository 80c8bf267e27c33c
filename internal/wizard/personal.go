package wizard

import (
	"github.com/gedeon/andikacv/internal/types"
)

// PersonalEditor manages the single personal-info record of a document.
// Unlike the list editors there is exactly one record and no add/remove.
type PersonalEditor struct {
	info   types.PersonalInfo
	notify Notify
}

// NewPersonalEditor builds the personal-info editor from an optional
// existing record.
func NewPersonalEditor(existing types.PersonalInfo, notify Notify) *PersonalEditor {
	ed := &PersonalEditor{info: existing, notify: notify}
	ed.emit()
	return ed
}

// Info returns the current personal-info record.
func (ed *PersonalEditor) Info() types.PersonalInfo {
	return ed.info
}

// UpdateField replaces one field on the record.
func (ed *PersonalEditor) UpdateField(field string, value any) {
	ed.info = ed.info.Set(field, value)
	ed.emit()
}

func (ed *PersonalEditor) emit() {
	if ed.notify == nil {
		return
	}
	ed.notify(SectionUpdate{Section: types.SectionPersonal, Payload: ed.info})
}
