// Package routines provides the built-in workloads the command line can time.
// Each routine follows a known growth model, which makes it easy to see the
// matching column of estimates converge on the measured final time.
package routines
