// SPDX-License-Identifier: EPL-2.0

package snrnoise

import "errors"

var (
	// ErrEmptyPath is returned when no input or output path was given
	ErrEmptyPath = errors.New("no file path given")

	// ErrNoInjector is returned by a Processor without a noise.Injector
	ErrNoInjector = errors.New("processor has no noise injector")
)
