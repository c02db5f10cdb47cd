package shipyard

import "errors"

var (
	// ErrMissingOrigin means a release or revert arrived for a component with
	// no recorded drag context.
	ErrMissingOrigin = errors.New("shipyard: drag origin missing")
	// ErrUnknownComponent means the component or kind is not managed by the editor.
	ErrUnknownComponent = errors.New("shipyard: unknown component")
)
