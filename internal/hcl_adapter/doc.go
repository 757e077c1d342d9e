// Package hcl_adapter loads the site configuration from HCL files.
package hcl_adapter
