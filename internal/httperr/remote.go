package httperr

import "errors"

// RemoteError is a failure reported by an external function endpoint.
// Body holds the upstream response verbatim so the admin UI can show
// exactly what the function said.
type RemoteError struct {
	Status int
	Body   string
}

func (e RemoteError) Error() string {
	return e.Body
}

func AsRemote(err error) (RemoteError, bool) {
	var re RemoteError
	ok := errors.As(err, &re)
	return re, ok
}
