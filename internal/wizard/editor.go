package wizard

import (
	"github.com/gedeon/andikacv/internal/types"
)

// Entry is implemented by every section record type managed by an editor.
type Entry[E any] interface {
	ID() string
	Set(field string, value any) E
}

// SectionUpdate carries a section's full current payload upward after a
// state change.
type SectionUpdate struct {
	Section types.Section
	Payload any
}

// Notify delivers section updates to the wizard controller. A nil Notify
// is valid; the editor then keeps its state purely locally.
type Notify func(SectionUpdate)

// Editor owns the ordered entry list of one wizard section. Every mutation
// emits the entire current list through its Notify so the controller can
// merge it into the aggregate document. The list never drops below one
// entry; removals below that floor are silent no-ops.
type Editor[E Entry[E]] struct {
	section types.Section
	entries []E
	blank   func(id string) E
	newID   IDFunc
	notify  Notify
}

func newEditor[E Entry[E]](section types.Section, existing []E, seed []E, blank func(id string) E, newID IDFunc, notify Notify) *Editor[E] {
	ed := &Editor[E]{
		section: section,
		blank:   blank,
		newID:   newID,
		notify:  notify,
	}
	if len(existing) > 0 {
		ed.entries = make([]E, len(existing))
		copy(ed.entries, existing)
	} else {
		ed.entries = seed
	}
	ed.emit()
	return ed
}

// Section returns the section this editor owns.
func (ed *Editor[E]) Section() types.Section {
	return ed.section
}

// Entries returns a copy of the current entry list.
func (ed *Editor[E]) Entries() []E {
	out := make([]E, len(ed.entries))
	copy(out, ed.entries)
	return out
}

// Len returns the number of entries.
func (ed *Editor[E]) Len() int {
	return len(ed.entries)
}

// Add appends one blank entry with a freshly generated id and returns it.
func (ed *Editor[E]) Add() E {
	entry := ed.blank(ed.newID())
	ed.entries = append(ed.entries, entry)
	ed.emit()
	return entry
}

// Remove deletes the entry with the matching id. The removal is refused
// when it would leave the list empty or when no entry matches; both cases
// return false without emitting an update.
func (ed *Editor[E]) Remove(id string) bool {
	if len(ed.entries) <= 1 {
		return false
	}
	for i, e := range ed.entries {
		if e.ID() == id {
			ed.entries = append(ed.entries[:i:i], ed.entries[i+1:]...)
			ed.emit()
			return true
		}
	}
	return false
}

// UpdateField replaces one field on the entry matching id, leaving every
// other entry untouched. Unknown ids are ignored.
func (ed *Editor[E]) UpdateField(id, field string, value any) {
	for i, e := range ed.entries {
		if e.ID() == id {
			ed.entries[i] = e.Set(field, value)
			ed.emit()
			return
		}
	}
}

func (ed *Editor[E]) emit() {
	if ed.notify == nil {
		return
	}
	payload := make([]E, len(ed.entries))
	copy(payload, ed.entries)
	ed.notify(SectionUpdate{Section: ed.section, Payload: payload})
}

// NewEducationEditor builds the education section editor, seeding one blank
// entry when no existing list is supplied.
func NewEducationEditor(existing []types.EducationEntry, newID IDFunc, notify Notify) *Editor[types.EducationEntry] {
	blank := func(id string) types.EducationEntry {
		return types.EducationEntry{EntryID: id}
	}
	return newEditor(types.SectionEducation, existing,
		[]types.EducationEntry{blank(newID())}, blank, newID, notify)
}

// NewExperienceEditor builds the experience section editor.
func NewExperienceEditor(existing []types.ExperienceEntry, newID IDFunc, notify Notify) *Editor[types.ExperienceEntry] {
	blank := func(id string) types.ExperienceEntry {
		return types.ExperienceEntry{EntryID: id}
	}
	return newEditor(types.SectionExperience, existing,
		[]types.ExperienceEntry{blank(newID())}, blank, newID, notify)
}

// NewLanguagesEditor builds the languages section editor. Blank entries
// default to intermediate proficiency.
func NewLanguagesEditor(existing []types.LanguageEntry, newID IDFunc, notify Notify) *Editor[types.LanguageEntry] {
	blank := func(id string) types.LanguageEntry {
		return types.LanguageEntry{EntryID: id, Proficiency: types.ProficiencyIntermediate}
	}
	return newEditor(types.SectionLanguages, existing,
		[]types.LanguageEntry{blank(newID())}, blank, newID, notify)
}

// NewCertificationsEditor builds the certifications section editor.
func NewCertificationsEditor(existing []types.CertificationEntry, newID IDFunc, notify Notify) *Editor[types.CertificationEntry] {
	blank := func(id string) types.CertificationEntry {
		return types.CertificationEntry{EntryID: id}
	}
	return newEditor(types.SectionCertifications, existing,
		[]types.CertificationEntry{blank(newID())}, blank, newID, notify)
}

// NewReferencesEditor builds the references section editor.
func NewReferencesEditor(existing []types.ReferenceEntry, newID IDFunc, notify Notify) *Editor[types.ReferenceEntry] {
	blank := func(id string) types.ReferenceEntry {
		return types.ReferenceEntry{EntryID: id}
	}
	return newEditor(types.SectionReferences, existing,
		[]types.ReferenceEntry{blank(newID())}, blank, newID, notify)
}
