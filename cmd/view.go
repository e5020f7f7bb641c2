package cmd

import (
	"github.com/hangxie/csv-browser/pager"
)

// ViewCmd is a kong command for the built-in pager
type ViewCmd struct {
	File string `arg:"" optional:"" predictor:"file" help:"CSV file to view (reads stdin when omitted)."`
	Box  string `default:"simple" help:"Box drawing style (simple, rounded, heavy, double, ascii, minimal, none)."`
}

// Run does the actual view job
func (v ViewCmd) Run() error {
	border, err := pager.BorderByName(v.Box)
	if err != nil {
		return err
	}

	frame, source, err := loadFrame(v.File)
	if err != nil {
		return err
	}

	p, err := pager.New(frame, source, border)
	if err != nil {
		return err
	}
	return p.Run()
}
