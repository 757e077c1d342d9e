// Package menu builds ordered navigation menus.
//
// Items are declared with a position and a symbolic destination. Build sorts
// them by position (stable on ties, so equal positions keep declaration
// order), translates their labels and resolves their destinations into an
// immutable Model. A fresh Model is built on every Prepare stage and handed
// to a Slot, which swaps it in atomically for concurrent readers.
package menu
