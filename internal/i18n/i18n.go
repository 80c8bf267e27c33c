// Package i18n provides display-string lookup for the two supported
// languages, English and Kinyarwanda.
package i18n

// Language identifies a supported display language.
type Language string

// Supported languages.
const (
	English     Language = "en"
	Kinyarwanda Language = "rw"
)

// Translator resolves translation keys for a fixed language. A missing key
// resolves to the key itself so untranslated strings stay visible rather
// than blank. Translators are immutable; construct one per request or per
// component instead of consulting shared mutable state.
type Translator struct {
	lang Language
}

// New returns a Translator for lang. Unknown languages fall back to English.
func New(lang Language) *Translator {
	if _, ok := translations[lang]; !ok {
		lang = English
	}
	return &Translator{lang: lang}
}

// Language returns the translator's language.
func (t *Translator) Language() Language {
	return t.lang
}

// T resolves key to its display string, falling back to the key itself.
func (t *Translator) T(key string) string {
	if s, ok := translations[t.lang][key]; ok {
		return s
	}
	return key
}

var translations = map[Language]map[string]string{
	English: {
		// Navigation
		"nav.home":          "Home",
		"nav.cv_builder":    "CV Builder",
		"nav.templates":     "Templates",
		"nav.cover_letters": "Cover Letters",
		"nav.pricing":       "Pricing",
		"nav.dashboard":     "Dashboard",

		// Auth
		"auth.sign_in":  "Sign In",
		"auth.sign_up":  "Sign Up",
		"auth.sign_out": "Sign Out",
		"auth.email":    "Email",
		"auth.password": "Password",

		// CV builder steps
		"cv.personal_info":  "Personal Info",
		"cv.education":      "Education",
		"cv.experience":     "Experience",
		"cv.skills":         "Skills",
		"cv.languages":      "Languages",
		"cv.certifications": "Certifications",
		"cv.references":     "References",
		"cv.preview":        "Preview CV",
		"cv.download":       "Download PDF",
		"cv.save_progress":  "Save Progress",
		"cv.next":           "Next",
		"cv.previous":       "Previous",
		"cv.step":           "Step",
		"cv.of":             "of",

		// Rendered CV labels
		"cv.section.summary":        "Professional Summary",
		"cv.section.experience":     "Professional Experience",
		"cv.section.education":      "Education",
		"cv.section.skills":         "Skills",
		"cv.section.languages":      "Languages",
		"cv.section.certifications": "Certifications",
		"cv.section.references":     "References",
		"cv.present":                "Present",
		"cv.expires":                "Expires",
		"cv.gpa":                    "GPA",

		// Month names for date formatting
		"month.1":  "January",
		"month.2":  "February",
		"month.3":  "March",
		"month.4":  "April",
		"month.5":  "May",
		"month.6":  "June",
		"month.7":  "July",
		"month.8":  "August",
		"month.9":  "September",
		"month.10": "October",
		"month.11": "November",
		"month.12": "December",

		// Common
		"common.loading":  "Loading...",
		"common.error":    "An error occurred",
		"common.success":  "Success!",
		"common.save":     "Save",
		"common.delete":   "Delete",
		"common.add":      "Add",
		"common.remove":   "Remove",
		"common.optional": "Optional",
		"common.required": "Required",
	},
	Kinyarwanda: {
		// Navigation
		"nav.home":          "Ahabanza",
		"nav.cv_builder":    "Gukora CV",
		"nav.templates":     "Inyandiko",
		"nav.cover_letters": "Inyandiko Z'Icyemezo",
		"nav.pricing":       "Ibiciro",
		"nav.dashboard":     "Ikibaho",

		// Auth
		"auth.sign_in":  "Injira",
		"auth.sign_up":  "Iyandikishe",
		"auth.sign_out": "Sohoka",
		"auth.email":    "Imeyili",
		"auth.password": "Ijambo banga",

		// CV builder steps
		"cv.personal_info":  "Amakuru Yawe",
		"cv.education":      "Amashuri",
		"cv.experience":     "Urugero",
		"cv.skills":         "Ubumenyi",
		"cv.languages":      "Indimi",
		"cv.certifications": "Impamyabumenyi",
		"cv.references":     "Abarebera",
		"cv.preview":        "Reba CV",
		"cv.download":       "Kuramo PDF",
		"cv.save_progress":  "Bika Inyuma",
		"cv.next":           "Komeza",
		"cv.previous":       "Subira Inyuma",
		"cv.step":           "Intambwe",
		"cv.of":             "kuri",

		// Rendered CV labels
		"cv.section.summary":        "Incamake y'Umwuga",
		"cv.section.experience":     "Uburambe mu Kazi",
		"cv.section.education":      "Amashuri",
		"cv.section.skills":         "Ubumenyi",
		"cv.section.languages":      "Indimi",
		"cv.section.certifications": "Impamyabumenyi",
		"cv.section.references":     "Abarebera",
		"cv.present":                "Ubu",
		"cv.expires":                "Izarangira",
		"cv.gpa":                    "Amanota",

		// Month names for date formatting
		"month.1":  "Mutarama",
		"month.2":  "Gashyantare",
		"month.3":  "Werurwe",
		"month.4":  "Mata",
		"month.5":  "Gicurasi",
		"month.6":  "Kamena",
		"month.7":  "Nyakanga",
		"month.8":  "Kanama",
		"month.9":  "Nzeri",
		"month.10": "Ukwakira",
		"month.11": "Ugushyingo",
		"month.12": "Ukuboza",

		// Common
		"common.loading":  "Birakora...",
		"common.error":    "Hari ikibazo cyabaye",
		"common.success":  "Byagenze neza!",
		"common.save":     "Bika",
		"common.delete":   "Siba",
		"common.add":      "Ongeraho",
		"common.remove":   "Kuraho",
		"common.optional": "Bihitamo",
		"common.required": "Bikenewe",
	},
}
