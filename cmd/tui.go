package cmd

// TUICmd is a kong command for the full-screen tview viewer
type TUICmd struct {
	File string `arg:"" optional:"" predictor:"file" help:"CSV file to view (reads stdin when omitted)."`
}

// Run does the actual tui job
func (t TUICmd) Run() error {
	frame, source, err := loadFrame(t.File)
	if err != nil {
		return err
	}

	app := NewTUIApp(frame, source)
	app.showMainView()
	app.pages.AddPage("main", app.mainLayout, true, true)
	app.tviewApp.SetRoot(app.pages, true)
	return app.tviewApp.Run()
}
