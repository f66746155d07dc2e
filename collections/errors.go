package collections

import (
	"errors"

	"github.com/go-softwarelab/common/pkg/optional"
)

// Sentinel errors returned by collection operations.
var (
	// ErrKeyNotFound is returned when an operation needs a key that is not
	// present in the collection.
	ErrKeyNotFound = errors.New("collections: key does not exist")

	// ErrKeyExists is returned by Add when the key is already present.
	ErrKeyExists = errors.New("collections: key already exists")

	// ErrIndexOutOfRange is returned when an index is outside [0, Size()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNotFound is the error ShouldGet returns on an empty lookup result.
	ErrNotFound = optional.ValueNotPresent

	// ErrMalformedPairs is returned when serialized key/value pairs cannot be
	// decoded.
	ErrMalformedPairs = errors.New("collections: malformed key/value pairs")

	// ErrMismatchedLengths is returned by Combine when keys and values
	// differ in length.
	ErrMismatchedLengths = errors.New("collections: keys and values have different lengths")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
