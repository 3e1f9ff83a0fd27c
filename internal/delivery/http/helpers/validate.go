package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes caps JSON request bodies. None of the API's payloads come
// anywhere near this; larger bodies are rejected before decoding.
const maxBodyBytes = 1 << 20

// Validator lets request DTOs report field problems after decoding.
// A nil or empty slice means the payload is acceptable.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate reads the request body into dest and, when dest
// implements Validator, runs its Validate method. Unknown fields and
// oversized bodies are rejected. On any failure it writes the 400 error
// envelope itself and returns false, so handlers can bail out with a
// bare return.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, decodeMessage(err))
		return false
	}
	if v, ok := dest.(Validator); ok {
		if problems := v.Validate(); len(problems) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(problems, "; "))
			return false
		}
	}
	return true
}

// decodeMessage turns the two decode failures clients hit most often into
// readable messages and passes everything else through.
func decodeMessage(err error) string {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.As(err, &maxErr):
		return "request body exceeds the size limit"
	default:
		return err.Error()
	}
}
