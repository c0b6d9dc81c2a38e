// Command binderctl manages PDF Binder appearance settings without the GUI.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/peternagy/pdfbinder/internal/platform"
)

func main() {
	root := NewRootCmd(afero.NewOsFs(), platform.NewSystem())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
