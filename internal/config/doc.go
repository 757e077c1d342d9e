// Package config defines the format-agnostic site configuration and the
// Loader interface that format adapters implement.
//
// The HCL implementation lives in the hcl_adapter package. Everything that
// reads settings at request time goes through Current, so a development
// reload can swap in a freshly loaded Site.
package config
