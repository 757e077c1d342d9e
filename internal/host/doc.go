// Package host is a small reference host platform for site extensions.
//
// It stands in for the framework the site layer customizes: a catalog of
// named classes that accept capabilities, a lifecycle bus, a route table
// and an HTTP surface. A development reload creates new class instances,
// so anything attached to the previous instances is gone until the
// lifecycle handlers attach it again.
package host
