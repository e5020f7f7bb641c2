package model

import (
	"fmt"

	"github.com/go-gota/gota/series"
)

// FormatValue formats a single element for display. Nulls render as "-",
// floats use compact %.4g notation, everything else is the element's
// string form.
func FormatValue(elem series.Element, typ ColumnType) string {
	if elem.IsNA() {
		return "-"
	}
	if typ == TypeFloat {
		return fmt.Sprintf("%.4g", elem.Float())
	}
	return elem.String()
}
