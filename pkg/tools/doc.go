// Package tools prepares the build host and inspects the snapcraft project.
//
// The host routines are idempotent: they check the current state first and
// only run privileged commands when something has to change.
package tools
