package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var loadingSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

func DrawBanner(w io.Writer) {
	banner := figure.NewFigure("Tag Doctor", "", true)
	fmt.Fprintln(w, text.FgHiCyan.Sprint(banner.String()))
}

// StartSpinner shows progress on stderr while live sources load
func StartSpinner(message string) {
	loadingSpinner.Suffix = " " + message
	loadingSpinner.Start()
}

func StopSpinner() {
	loadingSpinner.Stop()
}
