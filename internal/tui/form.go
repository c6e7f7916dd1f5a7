// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

const inputWidth = 40

func newEmailInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "email"
	input.CharLimit = 254
	input.Width = inputWidth
	return input
}

func newPasswordInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = inputWidth
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	return input
}

// form keeps a set of inputs with exactly one focused.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f *form) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}
