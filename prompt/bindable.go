/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package prompt

// Bindable is implemented by request types that know how to bind their
// fields into a template's placeholders.
type Bindable interface {
	Bind(*Prompt) (*Prompt, error)
}
