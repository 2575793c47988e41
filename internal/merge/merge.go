package merge

import (
	"maps"
	"slices"

	"github.com/shinji-kodama/devenv/internal/model"
)

// BuildShared folds the resolved module contributions into the project
// config, producing the shared (project + modules only) configuration.
//
// The fold runs right-to-left over the contribution list, prepending
// each contribution ahead of the accumulated state. For every ordered
// field (commands, mounts, plugins, env pairs, capAdd, securityOpt) the
// net effect is:
//
//	module₁, module₂, …, moduleN, explicit project values
//
// so contributions appear in listed module order with explicit project
// values always last. The features map is the one exception: a module
// key is only taken when not already present, which makes explicit
// project keys win every collision and, among modules, the later-listed
// module win (the same precedence the positional fold gives lists).
//
// The contribs slice must come from module.ResolveAll with the
// project's module list, so its order matches project.Modules.
func BuildShared(project *model.ProjectConfig, contribs []model.ModuleContribution) model.ResolvedConfig {
	// Seed the accumulator with the project's explicit values. Every
	// slice and map is cloned so the fold never aliases parsed input.
	resolved := model.ResolvedConfig{
		Name:                project.Name,
		Image:               project.Image,
		Modules:             slices.Clone(project.Modules),
		ForwardPorts:        slices.Clone(project.ForwardPorts),
		RemoteEnv:           slices.Clone(project.RemoteEnv),
		ContainerEnv:        slices.Clone(project.ContainerEnv),
		Plugins:             clonePlugins(project.Plugins),
		Mounts:              slices.Clone(project.Mounts),
		PostCreateCommands:  slices.Clone(project.PostCreateCommands),
		PostStartCommands:   slices.Clone(project.PostStartCommands),
		Features:            maps.Clone(project.Features),
		RemoteUser:          project.RemoteUser,
		UpdateRemoteUserUID: project.UpdateRemoteUserUID,
		CapAdd:              slices.Clone(project.CapAdd),
		SecurityOpt:         slices.Clone(project.SecurityOpt),
	}
	if resolved.Features == nil {
		resolved.Features = map[string]any{}
	}

	// Fold right-to-left: the last-listed module is folded first, and
	// each earlier module is prepended ahead of it. Positionally this
	// yields listed order for all concatenated fields.
	for i := len(contribs) - 1; i >= 0; i-- {
		prepend(&resolved, contribs[i])
	}

	// Plugin lists dedupe on first occurrence; all other list fields
	// concatenate without deduping.
	resolved.Plugins.VSCode = model.DedupeStrings(resolved.Plugins.VSCode)
	resolved.Plugins.JetBrains = model.DedupeStrings(resolved.Plugins.JetBrains)

	return resolved
}

// prepend places a single module contribution ahead of the accumulated
// state. Only the features map deviates from plain prepending: existing
// keys (project keys, or keys from a later-listed module) are kept.
func prepend(acc *model.ResolvedConfig, contrib model.ModuleContribution) {
	acc.Mounts = slices.Concat(contrib.Mounts, acc.Mounts)
	acc.RemoteEnv = slices.Concat(contrib.RemoteEnv, acc.RemoteEnv)
	acc.ContainerEnv = slices.Concat(contrib.ContainerEnv, acc.ContainerEnv)
	acc.PostCreateCommands = slices.Concat(contrib.PostCreateCommands, acc.PostCreateCommands)
	acc.CapAdd = slices.Concat(contrib.CapAdd, acc.CapAdd)
	acc.SecurityOpt = slices.Concat(contrib.SecurityOpt, acc.SecurityOpt)
	acc.Plugins.VSCode = slices.Concat(contrib.Plugins.VSCode, acc.Plugins.VSCode)
	acc.Plugins.JetBrains = slices.Concat(contrib.Plugins.JetBrains, acc.Plugins.JetBrains)

	for key, value := range contrib.Features {
		if _, exists := acc.Features[key]; !exists {
			acc.Features[key] = value
		}
	}
}

// ApplyUser overlays the user config on a shared configuration,
// producing the user output. Only two things may differ from the shared
// config:
//
//   - Plugin lists become project ++ user, deduplicated keeping the
//     first occurrence.
//   - A dotfiles spec synthesizes exactly two postCreate commands —
//     clone, then install — prepended ahead of the already merged
//     command list.
//
// Everything else passes through unchanged: the user config cannot
// alter the image, ports, env, mounts, features, or remote user.
// A nil user config yields a plain copy of the shared configuration.
func ApplyUser(shared model.ResolvedConfig, user *model.UserConfig) model.ResolvedConfig {
	out := cloneResolved(shared)
	if user == nil {
		return out
	}

	out.Plugins.VSCode = model.DedupeStrings(slices.Concat(shared.Plugins.VSCode, user.Plugins.VSCode))
	out.Plugins.JetBrains = model.DedupeStrings(slices.Concat(shared.Plugins.JetBrains, user.Plugins.JetBrains))

	if d := user.Dotfiles; d != nil {
		bootstrap := []model.Command{
			{Cmd: "git clone " + d.Repository + " " + d.TargetPath, WorkingDirectory: "."},
			{Cmd: d.InstallCommand, WorkingDirectory: d.TargetPath},
		}
		out.PostCreateCommands = slices.Concat(bootstrap, out.PostCreateCommands)
	}

	return out
}

// cloneResolved returns a copy of a resolved config that shares no
// slice or map storage with the original.
func cloneResolved(c model.ResolvedConfig) model.ResolvedConfig {
	c.Modules = slices.Clone(c.Modules)
	c.ForwardPorts = slices.Clone(c.ForwardPorts)
	c.RemoteEnv = slices.Clone(c.RemoteEnv)
	c.ContainerEnv = slices.Clone(c.ContainerEnv)
	c.Plugins = clonePlugins(c.Plugins)
	c.Mounts = slices.Clone(c.Mounts)
	c.PostCreateCommands = slices.Clone(c.PostCreateCommands)
	c.PostStartCommands = slices.Clone(c.PostStartCommands)
	c.Features = maps.Clone(c.Features)
	c.CapAdd = slices.Clone(c.CapAdd)
	c.SecurityOpt = slices.Clone(c.SecurityOpt)
	return c
}

// clonePlugins copies both plugin id lists.
func clonePlugins(p model.Plugins) model.Plugins {
	return model.Plugins{
		VSCode:    slices.Clone(p.VSCode),
		JetBrains: slices.Clone(p.JetBrains),
	}
}
