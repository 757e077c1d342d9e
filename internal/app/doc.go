// Package app contains the core application logic. It wires the site
// configuration, the extension modules and the host platform together and
// runs the HTTP server, decoupled from any specific entrypoint like a CLI.
package app
