//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenPosition shows a native file chooser for a FEN file and reads it.
func OpenPosition(title string) (Result, error) {
	path, err := dialog.File().Title(title).
		Filter("positions (*.fen *.txt)", "fen", "txt").
		Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}
