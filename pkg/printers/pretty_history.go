package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepicker/pkg/store"
)

// History prints remembered picks as a table.
func (pp *PrettyPrint) History(picks []*store.Pick) {
	if len(picks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "none")
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Value"), bold.Sprint("Format"), bold.Sprint("Updated"))
	for _, p := range picks {
		tbl.AddRow(p.Name, p.Text, p.Format, p.Updated.Local().Format(time.RFC822))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
