//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"errors"

	"syscall/js"
)

type Result struct {
	Path string // empty
	Name string
	Data []byte
}

// OpenPosition opens an <input type="file"> picker, waits for the choice
// and reads the file into memory.
func OpenPosition(title string) (Result, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return Result{}, errors.New("document not available")
	}

	ch := make(chan struct {
		res Result
		err error
	}, 1)

	input := doc.Call("createElement", "input")
	input.Set("type", "file")
	input.Set("accept", ".fen,.txt")

	// onchange dispatch
	onchange := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		files := input.Get("files")
		if files.Length() == 0 {
			ch <- struct {
				res Result
				err error
			}{Result{}, errors.New("no file selected")}
			return nil
		}

		file := files.Index(0)
		name := file.Get("name").String()
		reader := js.Global().Get("FileReader").New()

		onload := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			arrayBuf := reader.Get("result")
			uint8Arr := js.Global().Get("Uint8Array").New(arrayBuf)
			n := uint8Arr.Get("length").Int()
			data := make([]byte, n)
			js.CopyBytesToGo(data, uint8Arr)
			ch <- struct {
				res Result
				err error
			}{Result{Name: name, Data: data}, nil}
			return nil
		})

		onerror := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			ch <- struct {
				res Result
				err error
			}{Result{}, errors.New("failed to read file")}
			return nil
		})

		reader.Set("onload", onload)
		reader.Set("onerror", onerror)
		reader.Call("readAsArrayBuffer", file)
		return nil
	})

	input.Set("onchange", onchange)

	// add to DOM, then click()
	body := doc.Get("body")
	if !body.Truthy() {
		return Result{}, errors.New("document.body not available")
	}
	body.Call("appendChild", input)
	input.Call("click")

	// wait
	r := <-ch

	body.Call("removeChild", input)

	return r.res, r.err
}
