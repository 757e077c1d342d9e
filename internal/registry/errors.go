package registry

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/overlaygo/internal/lifecycle"
)

// ErrSealed is returned by Register once the registry has been sealed.
var ErrSealed = errors.New("registry is sealed")

// ConfigurationError reports a binding table that is wrong before anything
// runs: unknown targets, stages or routes. It is fatal at boot.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// AttachmentError reports a capability that could not be attached while a
// stage was firing. It aborts the stage.
type AttachmentError struct {
	Stage      lifecycle.Stage
	Target     string
	Capability string
	Err        error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attach %q to %q at stage %s: %v", e.Capability, e.Target, e.Stage, e.Err)
}

func (e *AttachmentError) Unwrap() error { return e.Err }

func configErr(reason string, err error) error {
	return &ConfigurationError{Reason: reason, Err: err}
}
