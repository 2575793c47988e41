// Package module holds the closed, compiled-in catalog of built-in
// modules. A module is a named, versionless bundle of container
// features, mounts, IDE plugins, environment variables, and setup
// commands that project configs reference by name.
//
// The catalog is static data: there is no registration mechanism and no
// plugin directory scanning. Resolving a list of names is all-or-nothing
// so that a single typo never results in a partially applied merge.
package module
