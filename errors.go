package fractal

import "errors"

// Errors reported by the package. Construction failures carry parameter
// detail and wrap these sentinels where applicable; use errors.Is to
// classify.
var (
	// ErrInvalidDimensions reports a render target with a zero or
	// negative width or height.
	ErrInvalidDimensions = errors.New("fractal: invalid dimensions")

	// ErrInvalidIterations reports a non-positive iteration budget.
	ErrInvalidIterations = errors.New("fractal: max iterations must be positive")

	// ErrInvalidRegion reports a degenerate (zero or negative extent)
	// viewport region.
	ErrInvalidRegion = errors.New("fractal: degenerate region")

	// ErrInvalidStride reports a non-positive initial stride for
	// progressive rendering.
	ErrInvalidStride = errors.New("fractal: initial stride must be positive")

	// ErrBufferSize reports a presentation buffer whose length does not
	// match width*height*4. This is an integration error, not a
	// recoverable runtime condition.
	ErrBufferSize = errors.New("fractal: buffer size mismatch")

	// ErrUnknownScheme reports a color scheme name that does not match
	// any known scheme.
	ErrUnknownScheme = errors.New("fractal: unknown color scheme")
)
