// Package preflight provides readiness checks for the inspection tool
// and filesystem paths that mediapeek depends on.
//
// The CLI "mediapeek status" command runs RunAll and renders the results;
// the individual check functions are exported for targeted use. Checks
// never mutate anything: they report, the caller decides.
package preflight
