package evio

import (
	"errors"
	"fmt"
)

// Kind discriminates the core's error taxonomy. Callers match on kind
// with errors.Is against the corresponding Err* sentinel below, not by
// inspecting error text.
type Kind int

const (
	KindIo Kind = iota
	KindBadMagic
	KindUnsupportedVersion
	KindBadHeader
	KindTruncated
	KindCorruption
	KindUnsupportedCompression
	KindBadComposite
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindBadMagic:
		return "bad-magic"
	case KindUnsupportedVersion:
		return "unsupported-version"
	case KindBadHeader:
		return "bad-header"
	case KindTruncated:
		return "truncated"
	case KindCorruption:
		return "corruption"
	case KindUnsupportedCompression:
		return "unsupported-compression"
	case KindBadComposite:
		return "bad-composite"
	case KindOutOfRange:
		return "out-of-range"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrIo                     = errors.New("evio: io error")
	ErrBadMagic               = errors.New("evio: bad magic")
	ErrUnsupportedVersion     = errors.New("evio: unsupported version")
	ErrBadHeader              = errors.New("evio: bad header")
	ErrTruncated              = errors.New("evio: truncated")
	ErrCorruption             = errors.New("evio: corruption")
	ErrUnsupportedCompression = errors.New("evio: unsupported compression")
	ErrBadComposite           = errors.New("evio: bad composite format")
	ErrOutOfRange             = errors.New("evio: index out of range")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindIo:
		return ErrIo
	case KindBadMagic:
		return ErrBadMagic
	case KindUnsupportedVersion:
		return ErrUnsupportedVersion
	case KindBadHeader:
		return ErrBadHeader
	case KindTruncated:
		return ErrTruncated
	case KindCorruption:
		return ErrCorruption
	case KindUnsupportedCompression:
		return ErrUnsupportedCompression
	case KindBadComposite:
		return ErrBadComposite
	case KindOutOfRange:
		return ErrOutOfRange
	default:
		return ErrCorruption
	}
}

// FormatError carries a byte offset alongside the error kind, so CLI
// diagnostics can point at the exact location a parse went wrong.
type FormatError struct {
	Kind   Kind
	Offset int64
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("evio: %s at offset 0x%x", e.Kind, e.Offset)
	}
	return fmt.Sprintf("evio: %s at offset 0x%x: %s", e.Kind, e.Offset, e.Detail)
}

func (e *FormatError) Unwrap() error {
	return sentinelFor(e.Kind)
}

func newErr(k Kind, offset int64, detail string) *FormatError {
	return &FormatError{Kind: k, Offset: offset, Detail: detail}
}

// wrapIoErr carries an os-level open/stat/read failure as a
// KindIo *FormatError, so callers (the CLI's exit-code mapping in
// particular) can distinguish "could not open the file" from a
// malformed-container error using the same Kind switch either way.
func wrapIoErr(err error) *FormatError {
	return &FormatError{Kind: KindIo, Offset: 0, Detail: err.Error()}
}
