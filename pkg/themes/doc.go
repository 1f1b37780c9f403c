// Package themes discovers theme folders below the themes root and loads
// each one into a types.ThemeFolder.
//
// Discovery lists the immediate subdirectories of the root, skipping names
// that match the configured ignore patterns (hidden folders by default), in
// sorted order. Loading checks the mandatory files first and only reads the
// manifest when all of them are present.
package themes
