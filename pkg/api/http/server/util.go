package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/voidshard/cooker/internal/utils"
	ie "github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/structs"
)

var (
	errmap map[int][]error = map[int][]error{
		http.StatusBadRequest: []error{
			ie.ErrInvalidArg,
			ie.ErrInvalidNode,
			ie.ErrInvalidState,
		},
		http.StatusNotFound: []error{
			ie.ErrNotFound,
		},
		http.StatusConflict: []error{
			ie.ErrSessionExists,
			ie.ErrTaskPending,
		},
		http.StatusNotImplemented: []error{
			ie.ErrNotSupported,
		},
		http.StatusServiceUnavailable: []error{
			ie.ErrNoSession,
			ie.ErrQueueFull,
			ie.ErrStopped,
		},
	}
)

// mapError returns the http status code for a given error, or
// http.StatusInternalServerError if the error is not recognised.
func mapError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for code, errs := range errmap {
		for _, e := range errs {
			if errors.Is(err, e) {
				return code
			}
		}
	}
	return http.StatusInternalServerError
}

// queryIDs reads a repeated id parameter, checking each is valid
func queryIDs(w http.ResponseWriter, r *http.Request, name string) ([]string, error) {
	ids := r.URL.Query()[name]
	for _, id := range ids {
		if !utils.IsValidID(id) {
			http.Error(w, "bad "+name, http.StatusBadRequest)
			return nil, fmt.Errorf("bad %s: %v", name, id)
		}
	}
	return ids, nil
}

// queryInt reads an integer parameter, if set
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int64, error) {
	q := r.URL.Query()
	if !q.Has(name) {
		return 0, nil
	}
	i, err := strconv.ParseInt(q.Get(name), 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, fmt.Errorf("bad %s: %v", name, err)
	}
	return i, nil
}

func unmarshalQuery(w http.ResponseWriter, r *http.Request, out *structs.Query) error {
	limit, err := queryInt(w, r, "limit")
	if err != nil {
		return err
	}
	offset, err := queryInt(w, r, "offset")
	if err != nil {
		return err
	}
	out.Limit, out.Offset = int(limit), int(offset)

	out.CreatedBefore, err = queryInt(w, r, "created_before")
	if err != nil {
		return err
	}
	out.CreatedAfter, err = queryInt(w, r, "created_after")
	if err != nil {
		return err
	}

	out.ClientIDs, err = queryIDs(w, r, "client_ids")
	if err != nil {
		return err
	}
	out.RequestIDs, err = queryIDs(w, r, "request_ids")
	if err != nil {
		return err
	}

	q := r.URL.Query()
	for _, k := range q["kinds"] {
		kind := structs.ToTaskKind(k)
		if kind == "" {
			http.Error(w, "bad kind", http.StatusBadRequest)
			return fmt.Errorf("bad kind: %v", k)
		}
		out.Kinds = append(out.Kinds, kind)
	}
	for _, s := range q["states"] {
		st := structs.ToTaskState(s)
		if st == "" {
			http.Error(w, "bad state", http.StatusBadRequest)
			return fmt.Errorf("bad state: %v", s)
		}
		out.States = append(out.States, st)
	}

	out.Sanitize()
	return nil
}

// unmarshalJson reads the body of a request and attempts to unmarshal it into the given object.
// This function writes an error to the writer if an error occurs, and returns the error.
func unmarshalJson(w http.ResponseWriter, r *http.Request, obj interface{}) error {
	if r.Body == nil {
		http.Error(w, "No body", http.StatusBadRequest)
		return fmt.Errorf("no body")
	}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields() // catch unwanted fields

	err := d.Decode(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return fmt.Errorf("bad json: %v", err)
	}

	return nil
}
