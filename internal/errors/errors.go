package errors

import (
	"encoding/json"
	"fmt"
)

// FailureKind classifies why customers could not be fetched
type FailureKind int

const (
	// TransportFailure means remote endpoint is unreachable
	TransportFailure FailureKind = iota + 1
	// HTTPStatusFailure means remote endpoint responded with non-2xx status
	HTTPStatusFailure
	// DecodeFailure means response body is not valid customers JSON
	DecodeFailure
)

func (k FailureKind) String() string {
	switch k {
	case TransportFailure:
		return "transport"
	case HTTPStatusFailure:
		return "http status"
	case DecodeFailure:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchFailure is raised by remote fetcher. All kinds are surfaced to user as a single message.
type FetchFailure struct {
	Kind   FailureKind
	Target string
	Status int
	Err    error
}

func (e *FetchFailure) Error() string {
	switch e.Kind {
	case HTTPStatusFailure:
		return fmt.Sprintf("failed to fetch %s - HTTP error status: %d", e.Target, e.Status)
	default:
		if e.Err == nil {
			return fmt.Sprintf("failed to fetch %s", e.Target)
		}
		return fmt.Sprintf("failed to fetch %s - %v", e.Target, e.Err)
	}
}

func (e *FetchFailure) Unwrap() error {
	return e.Err
}

func (e *FetchFailure) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string `json:"kind"`
		Status  int    `json:"status,omitempty"`
		Message string `json:"message"`
	}{Kind: e.Kind.String(), Status: e.Status, Message: e.Error()})
}

// NewTransportFailure builds failure for unreachable endpoint
func NewTransportFailure(target string, err error) *FetchFailure {
	return &FetchFailure{Kind: TransportFailure, Target: target, Err: err}
}

// NewHTTPStatusFailure builds failure for non-2xx response
func NewHTTPStatusFailure(target string, status int) *FetchFailure {
	return &FetchFailure{Kind: HTTPStatusFailure, Target: target, Status: status}
}

// NewDecodeFailure builds failure for malformed response body
func NewDecodeFailure(target string, err error) *FetchFailure {
	return &FetchFailure{Kind: DecodeFailure, Target: target, Err: err}
}

type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}
