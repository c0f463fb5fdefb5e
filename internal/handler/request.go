package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes caps request bodies at 100 KiB.
const maxBodyBytes = 100 << 10

// decodeBody fills dst from a JSON or URL-encoded form body. Bodies of any
// other (or no) content type, and empty bodies, leave dst untouched.
// fromForm copies form values into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fromForm func(url.Values)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mt := mediaType(r)
	if mt == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		fromForm(r.PostForm)
		return nil
	}
	if mt != "application/json" && !strings.HasSuffix(mt, "+json") {
		return nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// mediaType returns the request's lower-cased media type, or "" when the
// Content-Type header is missing or malformed.
func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// formValue returns the form value for key, or nil when it is absent so
// that the field is treated like a missing JSON property.
func formValue(form url.Values, key string) any {
	if _, ok := form[key]; !ok {
		return nil
	}
	return form.Get(key)
}
