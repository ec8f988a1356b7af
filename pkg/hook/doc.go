// Package hook defines the plugin surface a host build system calls into.
//
// # Overview
//
// A host build backend resolves project metadata in passes. During a pass it
// hands each registered metadata hook the in-progress metadata mapping and
// lets the hook insert the fields it computes. Version sources are the same
// idea for the single version string: the host reads the project version
// through [VersionSource.GetVersion] and writes bumped versions back through
// [VersionSource.SetVersion].
//
// This package carries the interfaces, name-based plugin lookup, and the
// shared plumbing every plugin needs: typed access to host-supplied option
// maps and JSON manifest loading rooted at the project directory.
//
// # Implementations
//
//   - [npmmeta.Source] contributes package.json metadata fields
//   - [nodever.Source] translates the package.json version field
//
// [npmmeta.Source]: github.com/matzehuels/nodemeta/pkg/npmmeta
// [nodever.Source]: github.com/matzehuels/nodemeta/pkg/nodever
package hook
