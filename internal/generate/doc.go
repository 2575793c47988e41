// Package generate orchestrates the full pipeline behind the generate
// and check operations: load configs, resolve modules, merge, discover
// hooks, serialize, and then either write both artifacts (generate) or
// compare them byte-for-byte against what is on disk (check).
//
// Both operations run the identical resolution path, which is what
// makes check trustworthy: it compares against exactly the bytes
// generate would write right now.
package generate
