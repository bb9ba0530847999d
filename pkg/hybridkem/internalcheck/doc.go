// Package internalcheck holds source-level policy tests for the hybridkem
// core: no direct byte-slice comparisons (constant-time policy) and no hex
// formatting of potentially secret values. It is not intended for external
// use and the API may change without notice.
package internalcheck
