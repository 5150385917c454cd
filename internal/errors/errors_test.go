package errors

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchFailureMessages(t *testing.T) {
	t.Log("http status failure carries status code")
	{
		err := NewHTTPStatusFailure("customers", 500)
		require.Equal(t, "failed to fetch customers - HTTP error status: 500", err.Error())
	}

	t.Log("transport failure carries cause")
	{
		err := NewTransportFailure("customers", io.ErrUnexpectedEOF)
		require.Equal(t, "failed to fetch customers - unexpected EOF", err.Error())
		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "cause must be unwrapped")
	}

	t.Log("failure is detectable through wrapping")
	{
		var wrapped error = NewDecodeFailure("customers", errors.New("bad json"))
		var ff *FetchFailure
		require.True(t, errors.As(wrapped, &ff))
		require.Equal(t, DecodeFailure, ff.Kind)
	}
}

func TestFetchFailureJSON(t *testing.T) {
	b, err := json.Marshal(NewHTTPStatusFailure("customers", 404))
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"http status","status":404,"message":"failed to fetch customers - HTTP error status: 404"}`, string(b))
}
