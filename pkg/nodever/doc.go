// Package nodever translates version strings between npm's semver dialect
// and PEP 440, and exposes package.json as a project version source.
//
// npm version strings are a near superset of PEP 440 ones for the forms
// both ecosystems actually publish: three release components, an optional
// prerelease, and an optional build/local segment. The two grammars here
// accept exactly that overlap; anything outside it is rejected rather than
// guessed at.
//
//	nodever.NodeToPython("1.2.3-beta.4")  // "1.2.3beta4"
//	nodever.PythonToNode("1.2.3rc1")      // "1.2.3-rc1"
package nodever
