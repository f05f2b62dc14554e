package naive

import "errors"

var (
	// ErrNilRequest indicates a nil request or a request without a series.
	ErrNilRequest = errors.New("naive: nil request")

	// ErrUnsupportedMethod indicates a reconciliation method this backend
	// cannot apply directly (the cross-validated selector is the
	// orchestrator's job, never the backend's).
	ErrUnsupportedMethod = errors.New("naive: unsupported reconciliation method")
)
