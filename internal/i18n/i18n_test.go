package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_KnownKeys(t *testing.T) {
	en := New(English)
	rw := New(Kinyarwanda)

	assert.Equal(t, "CV Builder", en.T("nav.cv_builder"))
	assert.Equal(t, "Gukora CV", rw.T("nav.cv_builder"))
	assert.Equal(t, "Present", en.T("cv.present"))
	assert.Equal(t, "Ubu", rw.T("cv.present"))
}

func TestTranslator_MissingKeyFallsBackToKey(t *testing.T) {
	en := New(English)
	assert.Equal(t, "nav.does_not_exist", en.T("nav.does_not_exist"))
}

func TestTranslator_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	tr := New(Language("fr"))
	assert.Equal(t, English, tr.Language())
	assert.Equal(t, "Home", tr.T("nav.home"))
}

func TestTranslator_MonthNames(t *testing.T) {
	en := New(English)
	rw := New(Kinyarwanda)

	assert.Equal(t, "January", en.T("month.1"))
	assert.Equal(t, "December", en.T("month.12"))
	assert.Equal(t, "Mutarama", rw.T("month.1"))
	assert.Equal(t, "Ukuboza", rw.T("month.12"))
}
