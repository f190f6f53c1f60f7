package summarizer

import "errors"

// ErrorKind tags the failures a summarization call can return.
type ErrorKind int

const (
	KindEmptyDocument ErrorKind = iota + 1
	KindInputTooShort
	KindInvalidSentenceCount
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyDocument:
		return "empty document"
	case KindInputTooShort:
		return "input too short"
	case KindInvalidSentenceCount:
		return "invalid sentence count"
	default:
		return "unknown error"
	}
}

// Error is a summarization failure. Two errors match under errors.Is when
// their kinds are equal, so callers compare against the Err* sentinels.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrEmptyDocument        = &Error{Kind: KindEmptyDocument}
	ErrInputTooShort        = &Error{Kind: KindInputTooShort}
	ErrInvalidSentenceCount = &Error{Kind: KindInvalidSentenceCount}
)

// KindOf extracts the kind tag from err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
