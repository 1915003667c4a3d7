//go:build js && wasm
// +build js,wasm

package gclipboard

import "errors"

var errUnsupported = errors.New("clipboard not available in browser build")

func ReadAll() (string, error) {
	return "", errUnsupported
}

func WriteAll(text string) error {
	return errUnsupported
}
