package bimultimap

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

// ErrConcurrentModification is the panic value (wrapped) raised when a
// sequence returned by KeyIter, ValueIter or All is consumed after the map it
// came from was modified.
var ErrConcurrentModification = errors.New("bimultimap modified during iteration")

// ErrInvalidCapacity occurs when a BiMultiMap is constructed with a grid
// dimension smaller than one, or with dimensions whose product overflows.
type ErrInvalidCapacity struct {
	error
	rows int
	cols int
}

// NewInvalidCapacityErr constructs a new invalid capacity error.
func NewInvalidCapacityErr(rows, cols int) error {
	return ErrInvalidCapacity{
		error: fmt.Errorf("invalid bucket grid capacity %dx%d: rows and cols must both be at least 1", rows, cols),
		rows:  rows,
		cols:  cols,
	}
}

// Rows is the requested number of rows.
func (err ErrInvalidCapacity) Rows() int { return err.rows }

// Cols is the requested number of columns.
func (err ErrInvalidCapacity) Cols() int { return err.cols }

// Unwrap returns the inner, wrapped error.
func (err ErrInvalidCapacity) Unwrap() error { return err.error }

// MarshalZerologObject implements zerolog object marshalling.
func (err ErrInvalidCapacity) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Int("rows", err.rows).Int("cols", err.cols)
}

// DetailsMetadata returns the metadata for details for this error.
func (err ErrInvalidCapacity) DetailsMetadata() map[string]string {
	return map[string]string{
		"rows": strconv.Itoa(err.rows),
		"cols": strconv.Itoa(err.cols),
	}
}
