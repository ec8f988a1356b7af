// Package npmmeta translates package.json metadata into the core metadata
// fields a Python build backend consumes.
//
// # Overview
//
// The npm ecosystem and Python packaging describe the same facts with
// different schemas. This package maps the overlapping subset:
//
//   - author          -> author (parsed into name/email)
//   - contributors    -> maintainers
//   - keywords        -> keywords
//   - description     -> description
//   - license         -> license
//   - homepage, bugs, repository -> urls
//
// Fields absent from the manifest are simply not written; the hook never
// removes or rewrites keys it does not compute.
//
// # Parsing
//
// Three npm conventions need real parsing:
//
//   - Author shorthand strings ("Barney Rubble <b@rubble.com> (http://barnyrubble.tumblr.com/)")
//     are split into display name and email; the parenthesized URL is dropped.
//   - Repository shorthands ("github:user/repo", or bare "user/repo" which
//     implies github) resolve against a fixed provider table.
//   - The bugs field may be a plain URL string or an object that may or may
//     not carry one.
//
// # Usage
//
//	source := npmmeta.New(root, map[string]any{"path": "package.json"})
//	metadata := make(map[string]any)
//	if err := source.Update(metadata); err != nil {
//	    // INVALID_OPTION, FILE_NOT_FOUND, INVALID_MANIFEST, or INVALID_AUTHOR
//	}
package npmmeta
