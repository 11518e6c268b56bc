// internal/assetid/doc.go

/*
Package assetid provides a structured representation for the qualified
address of a declaration inside an asset catalog.

The canonical format is a dot-separated chain of group names ending in the
entry identifier, e.g. `MoviestarplanetComponents.Login.CityBackground`.
Every segment must look like a Go identifier so that declarations can be
bound to accessor functions without renaming.
*/
package assetid
