// Package lifecycle defines the fixed set of host lifecycle stages and the
// bus that publishes them.
//
// Within one boot/reload cycle the stages occur in this order:
//
//	ModelLoad → ClassUnload → RouteLoad → Prepare
//
// ModelLoad, ClassUnload and RouteLoad may repeat across development-style
// hot reloads. Prepare fires exactly once per cycle, always last and always
// after routes have been drawn. ClassUnload only exists to counter the host
// reloading its own classes; a deployment that never reloads never fires it.
//
// The bus runs handlers synchronously in subscription order and stops the
// stage at the first error, so a failing handler aborts the cycle instead of
// leaving it half-applied.
package lifecycle
