package errs

import (
	"errors"
	"net/url"
	"strings"
)

// Redact returns err with the query string removed from the request URL of a
// *url.Error in its chain. Query strings may carry credentials such as api_key.
// Errors without a request URL are returned as is.
func Redact(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}

	i := strings.IndexByte(ue.URL, '?')
	if i < 0 {
		return err
	}

	return &url.Error{
		Op:  ue.Op,
		URL: ue.URL[:i],
		Err: ue.Err,
	}
}
