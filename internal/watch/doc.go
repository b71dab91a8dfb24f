// Package watch times a routine at a series of increasing input sizes and,
// after each measurement, extrapolates how long the routine will take on a
// final, larger size under every configured growth model.
//
// A run is strictly sequential: one blocking call per size on the calling
// goroutine, with progress delivered to a Reporter as soon as each call
// returns. Estimates from models that grow faster than the routine
// overestimate and those that grow slower underestimate; both converge on
// the real time as the sample sizes approach the final size.
package watch
