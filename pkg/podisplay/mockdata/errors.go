package mockdata

import (
	"errors"
	"fmt"
)

// DataLoadError reports a mock document that could not be read or parsed.
// It is recoverable: the view keeps working without the document.
type DataLoadError struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("mockdata: load %s from %s: %v", e.Kind, e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// IsDataLoadError checks if an error is a data load failure.
func IsDataLoadError(err error) bool {
	var loadErr *DataLoadError
	return errors.As(err, &loadErr)
}
