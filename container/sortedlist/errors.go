package sortedlist

import "errors"

var (
	// ErrIndexOutOfRange is returned when looking up an element index outside
	// of [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCount is returned when asking to insert or remove a number of
	// occurrences that the node cannot satisfy.
	ErrInvalidCount = errors.New("invalid occurrence count")

	// ErrDetached is the panic value raised when a node that was removed from
	// its list is used as a reference or hint.
	ErrDetached = errors.New("node was removed from its list")

	// ErrForeignNode is the panic value raised when a node of another list is
	// used as a reference or hint.
	ErrForeignNode = errors.New("node is not part of this list")

	// ErrNotInitialized is the panic value raised when inserting in a list
	// which has no comparison function.
	ErrNotInitialized = errors.New("list must be initialized with a comparison function")
)
