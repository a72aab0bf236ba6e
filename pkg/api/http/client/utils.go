package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/voidshard/cooker/pkg/structs"
)

// genericPatch is a helper to PATCH data to a given URL and unmarshal the response
func genericPatch(addr *url.URL, in interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPatch, addr.String(), bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	return readResponse(resp, out)
}

// genericGet is a helper to GET data from a given URL and unmarshal the response.
// Implies the Query string is already set, if needed.
func genericGet(addr *url.URL, out interface{}) error {
	resp, err := http.Get(addr.String())
	if err != nil {
		return err
	}
	return readResponse(resp, out)
}

// readResponse unmarshals a response body, turning error codes into errors
func readResponse(resp *http.Response, out interface{}) error {
	if resp.Body == nil { // there is no data to read
		if resp.StatusCode >= 400 {
			return fmt.Errorf("bad status code: %d", resp.StatusCode)
		}
		return nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 { // some error code, assume message is error message
		return fmt.Errorf("bad status code %d, returned %s", resp.StatusCode, string(bytes.TrimSpace(body)))
	}

	return json.Unmarshal(body, out)
}

// setQueryString sets the query string of a URL based on the given query object.
func setQueryString(u *url.URL, q *structs.Query) {
	if q == nil {
		q = &structs.Query{}
	}
	q.Sanitize()
	values := u.Query()

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.CreatedBefore > 0 {
		values.Set("created_before", strconv.FormatInt(q.CreatedBefore, 10))
	}
	if q.CreatedAfter > 0 {
		values.Set("created_after", strconv.FormatInt(q.CreatedAfter, 10))
	}
	if q.ClientIDs != nil {
		values["client_ids"] = q.ClientIDs
	}
	if q.RequestIDs != nil {
		values["request_ids"] = q.RequestIDs
	}
	if q.Kinds != nil {
		ks := []string{}
		for _, k := range q.Kinds {
			ks = append(ks, string(k))
		}
		values["kinds"] = ks
	}
	if q.States != nil {
		ss := []string{}
		for _, s := range q.States {
			ss = append(ss, string(s))
		}
		values["states"] = ss
	}

	u.RawQuery = values.Encode()
}
