package git

import (
	"fmt"
	"time"

	"github.com/varalys/secretguard/internal/engine"
)

// Backend names accepted by New.
const (
	BackendExec   = "exec"
	BackendNative = "native"
)

// New returns the collaborator for backend, rooted at dir. An empty backend
// selects BackendExec. timeout bounds each git command for the exec backend
// and each repository read for the native one; zero means DefaultTimeout.
func New(backend, dir string, timeout time.Duration) (engine.Collaborator, error) {
	switch backend {
	case "", BackendExec:
		return &Client{Dir: dir, Timeout: timeout}, nil
	case BackendNative:
		return &Native{Dir: dir, Timeout: timeout}, nil
	default:
		return nil, &engine.UsageError{Msg: fmt.Sprintf("unknown backend %q (want %s or %s)", backend, BackendExec, BackendNative)}
	}
}
