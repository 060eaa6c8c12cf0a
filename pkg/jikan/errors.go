package jikan

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why an upstream call produced no result.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1
	KindHTTPStatus
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by every Client operation that fails.
type Error struct {
	Op         string
	Kind       ErrorKind
	StatusCode int    // set for KindHTTPStatus
	Detail     string // response body excerpt or decode message
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("jikan %s: unexpected status %d", e.Op, e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("jikan %s: failed to decode response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("jikan %s: request failed: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or 0 if err is not a *Error.
func KindOf(err error) ErrorKind {
	var jerr *Error
	if errors.As(err, &jerr) {
		return jerr.Kind
	}
	return 0
}

// IsNotFound reports whether the upstream answered 404.
func IsNotFound(err error) bool {
	var jerr *Error
	return errors.As(err, &jerr) && jerr.Kind == KindHTTPStatus && jerr.StatusCode == http.StatusNotFound
}
