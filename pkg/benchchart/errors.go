package benchchart

import (
	"fmt"
)

// ChartError represents a failure while rendering one chart.
type ChartError struct {
	Dataset string
	Title   string
	Err     error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %q of dataset %q: %v", e.Title, e.Dataset, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError.
func NewChartError(dataset, title string, err error) *ChartError {
	return &ChartError{
		Dataset: dataset,
		Title:   title,
		Err:     err,
	}
}
