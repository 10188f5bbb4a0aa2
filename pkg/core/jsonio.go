package core

import (
	"encoding/json"
	"io"
)

// MarshalResult pretty-prints a scan result as JSON for pipelines. Matched
// text only appears in redacted form.
func MarshalResult(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// UnmarshalResult decodes a result written by MarshalResult.
func UnmarshalResult(rd io.Reader) (Result, error) {
	var r Result
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Result{}, err
	}
	return r, nil
}
