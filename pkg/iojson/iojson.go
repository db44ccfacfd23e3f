// Package iojson contains utilities for reading and writing JSON from a
// command line interface perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteWith marshals obj as indented JSON to w. Marshal failures are
// reported to ew as a JSON error blob so output stays machine-readable
// either way.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		msgBytes, _ := json.Marshal(err.Error())
		_, werr := fmt.Fprintf(ew, `{"message":"error marshaling in iojson.Write","data":{"json_error":%s}}`+"\n", msgBytes)
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
