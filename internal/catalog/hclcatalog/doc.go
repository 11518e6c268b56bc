// Package hclcatalog loads catalog declarations from HCL files.
//
// A catalog file nests `group` blocks and ends in `entry` blocks:
//
//	base_url = "https://raw.githubusercontent.com/${env.ASSETS_OWNER}/assets/main/"
//
//	group "MoviestarplanetComponents" {
//	  group "Login" {
//	    entry "CityBackground" { file = "citybackground.svg" }
//	  }
//	  group "Constants" {
//	    in_path = false
//	    entry "Namespace" {}
//	  }
//	}
//
// Groups participate in the path unless `in_path = false`. An entry without
// `file` is a namespace-only declaration. `base_url` is optional and may refer
// to the process environment through the `env` object. Several files can be
// loaded together; groups with the same qualified name are merged, and entry
// identifiers must stay unique across all of them.
package hclcatalog
