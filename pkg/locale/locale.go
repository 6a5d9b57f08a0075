// Package locale holds the language tables used to render day and month
// names.
package locale

import (
	"sort"
	"strings"
)

// DefaultCode is used whenever a lookup misses.
const DefaultCode = "en"

// Language is a single translation table.
type Language struct {
	Code        string
	Days        [7]string
	DaysShort   [7]string
	DaysMin     [7]string
	Months      [12]string
	MonthsShort [12]string
	Today       string
	Clear       string
	Now         string
	Done        string
	Hours       string
	Minutes     string
	Seconds     string
}

// Table resolves a language code to a Language.
type Table interface {
	Lookup(code string) (Language, bool)
}

// Map is a Table backed by a map keyed by language code.
type Map map[string]Language

// Lookup implements Table.
func (m Map) Lookup(code string) (Language, bool) {
	l, ok := m[code]
	return l, ok
}

// Codes lists the language codes in the table, sorted.
func (m Map) Codes() []string {
	codes := make([]string, 0, len(m))
	for k := range m {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// Resolve looks code up in t and falls back to English when either the table
// is nil or the code is unknown.
func Resolve(t Table, code string) Language {
	if t != nil {
		if l, ok := t.Lookup(code); ok {
			return l
		}
		if l, ok := t.Lookup(DefaultCode); ok {
			return l
		}
	}
	return English
}

// MonthIndex matches name against the long and short month names,
// case-insensitively. It returns the 0-based month.
func (l Language) MonthIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	for i, m := range l.Months {
		if strings.EqualFold(m, name) {
			return i, true
		}
	}
	for i, m := range l.MonthsShort {
		if strings.EqualFold(m, name) {
			return i, true
		}
	}
	return 0, false
}

// English is the default language.
var English = Language{
	Code:        "en",
	Days:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DaysShort:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	DaysMin:     [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	MonthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Today:       "Today",
	Clear:       "Clear",
	Now:         "Now",
	Done:        "Done",
	Hours:       "Hours",
	Minutes:     "Minutes",
	Seconds:     "Seconds",
}

// German translation.
var German = Language{
	Code:        "de",
	Days:        [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	DaysShort:   [7]string{"Son", "Mon", "Die", "Mit", "Don", "Fre", "Sam"},
	DaysMin:     [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	Months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	MonthsShort: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	Today:       "Heute",
	Clear:       "Löschen",
	Now:         "Jetzt",
	Done:        "Fertig",
	Hours:       "Stunden",
	Minutes:     "Minuten",
	Seconds:     "Sekunden",
}

// French translation.
var French = Language{
	Code:        "fr",
	Days:        [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	DaysShort:   [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	DaysMin:     [7]string{"d", "l", "ma", "me", "j", "v", "s"},
	Months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	MonthsShort: [12]string{"janv.", "févr.", "mars", "avril", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	Today:       "Aujourd'hui",
	Clear:       "Effacer",
	Now:         "Maintenant",
	Done:        "Terminé",
	Hours:       "Heures",
	Minutes:     "Minutes",
	Seconds:     "Secondes",
}

// Spanish translation.
var Spanish = Language{
	Code:        "es",
	Days:        [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"},
	DaysShort:   [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
	DaysMin:     [7]string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sa"},
	Months:      [12]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	MonthsShort: [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"},
	Today:       "Hoy",
	Clear:       "Borrar",
	Now:         "Ahora",
	Done:        "Hecho",
	Hours:       "Horas",
	Minutes:     "Minutos",
	Seconds:     "Segundos",
}

// Builtin returns a fresh table holding the bundled languages. Callers may
// add to the returned map without affecting other tables.
func Builtin() Map {
	return Map{
		English.Code: English,
		German.Code:  German,
		French.Code:  French,
		Spanish.Code: Spanish,
	}
}
