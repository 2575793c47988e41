// Package model defines the domain types for the devenv CLI.
//
// The types fall into three groups:
//
//   - Configuration input: ProjectConfig (version-controlled project
//     document), UserConfig (per-machine document), and
//     ModuleContribution (a built-in bundle referenced by name).
//   - Merge output: ResolvedConfig, the fully merged configuration that
//     the serializer turns into devcontainer JSON.
//   - Operation results: GenerateResult and CheckResult, the tagged
//     result variants returned by the generation orchestrator, plus
//     CLIError for error-to-exit-code translation.
//
// All configuration values are immutable once parsed: merge steps build
// new values rather than mutating inputs, so the same parsed config can
// feed both the shared and the user output.
package model
