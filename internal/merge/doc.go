// Package merge combines module contributions, the project config, and
// the optional user config into the two final configurations: the
// shared config (project + modules, suitable for check-in and CI) and
// the user config overlay (shared + personal plugins and dotfiles).
//
// All functions are pure: inputs are never mutated, every output slice
// and map is freshly allocated. This keeps the same parsed project
// config safe to feed into both outputs.
package merge
