// Package sanitizer normalizes client-supplied contact data before
// validation and record rendering.
//
// All functions are idempotent - applying them twice produces the same
// result. Invalid input is returned in a best-effort normalized form rather
// than rejected; admission rules about what is acceptable live in the
// normalizer, not here.
package sanitizer
