package assemble

import (
	"fmt"
	"strconv"
	"strings"
)

// formatDate turns a "2006-01" year-month value into "January 2006" with
// the month name localized. Values that do not parse are returned as-is
// so partially typed input still shows up in preview.
func (a *Assembler) formatDate(ym string) string {
	if ym == "" {
		return ""
	}
	year, month, ok := splitYearMonth(ym)
	if !ok {
		return ym
	}
	return fmt.Sprintf("%s %s", a.t.T("month."+strconv.Itoa(month)), year)
}

func splitYearMonth(ym string) (year string, month int, ok bool) {
	year, monthPart, found := strings.Cut(ym, "-")
	if !found || len(year) != 4 {
		return "", 0, false
	}
	if _, err := strconv.Atoi(year); err != nil {
		return "", 0, false
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return "", 0, false
	}
	return year, month, true
}
