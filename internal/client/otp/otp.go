// Package otp models a segmented one-time-code entry widget: six independent
// single-digit slots with per-slot input, backspace navigation, and paste
// distribution. The model is pure; rendering and keystroke capture live in
// the view layer.
package otp

import "strings"

// Length is the fixed number of code slots.
const Length = 6

// Input is the state of the segmented entry widget. The zero value is ready
// to use: all slots empty, focus on slot 0.
type Input struct {
	slots [Length]string
	focus int
}

// New returns an empty widget.
func New() *Input { return &Input{} }

// Type handles a single-character input event at slot i. Non-digit
// characters are stripped; if more than one digit was produced only the last
// is kept (guards against composition artifacts). An empty result leaves the
// widget untouched: no state change, no focus move. Otherwise slot i is set
// and focus advances to i+1 unless i is the last slot.
func (in *Input) Type(i int, s string) {
	if i < 0 || i >= Length {
		return
	}
	digits := digitsOnly(s)
	if digits == "" {
		return
	}
	in.slots[i] = string(digits[len(digits)-1])
	if i < Length-1 {
		in.focus = i + 1
	} else {
		in.focus = i
	}
}

// Backspace handles a backspace keystroke at slot i. Two effects, applied in
// this order: if slot i is already empty and i > 0, focus moves to i-1;
// regardless, slot i is cleared.
func (in *Input) Backspace(i int) {
	if i < 0 || i >= Length {
		return
	}
	if in.slots[i] == "" && i > 0 {
		in.focus = i - 1
	}
	in.slots[i] = ""
}

// Paste distributes clipboard text into the slots: digits only, truncated to
// six, filled from slot 0 (not from the focused slot), with focus landing on
// min(pastedLength, 5). Non-digit-only input with no digits is ignored.
func (in *Input) Paste(s string) {
	digits := digitsOnly(s)
	if digits == "" {
		return
	}
	if len(digits) > Length {
		digits = digits[:Length]
	}
	for i := 0; i < len(digits); i++ {
		in.slots[i] = string(digits[i])
	}
	in.focus = len(digits)
	if in.focus > Length-1 {
		in.focus = Length - 1
	}
}

// Focus returns the index of the currently focused slot.
func (in *Input) Focus() int { return in.focus }

// Slot returns the value of slot i ("" when empty or out of range).
func (in *Input) Slot(i int) string {
	if i < 0 || i >= Length {
		return ""
	}
	return in.slots[i]
}

// Complete reports whether every slot holds a digit; submission is enabled
// only then.
func (in *Input) Complete() bool {
	for _, s := range in.slots {
		if s == "" {
			return false
		}
	}
	return true
}

// Code joins the slots into the submitted code string in index order.
func (in *Input) Code() string {
	return strings.Join(in.slots[:], "")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
