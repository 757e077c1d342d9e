// Package registry is the process-wide extension registry.
//
// Bindings pair a host target with a capability and the lifecycle stage at
// which the capability is (re)attached. The registry is populated once by
// the bootstrap, validated against the host, sealed, and subscribed to every
// stage of the host's lifecycle bus. From then on it is read-only: each time
// a stage fires, every binding registered for that stage is applied again,
// in registration order. Re-applying on every cycle is what keeps a
// customization alive after the host reloads the class it was attached to.
//
// Misconfiguration is never recoverable here. A binding that cannot be
// registered or validated is a ConfigurationError and must stop the process
// from starting; an attachment that fails while a stage is firing is an
// AttachmentError and aborts that stage.
package registry
