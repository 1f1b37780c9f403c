// Package manifest parses and validates theme manifests.
//
// A manifest is first parsed into a types.RawManifest, validated against the
// schema with Validate, and only converted to a typed types.ThemeManifest when
// validation reports no errors. Validation is exhaustive: every rule is
// evaluated independently so a contributor sees every problem in one run.
package manifest
