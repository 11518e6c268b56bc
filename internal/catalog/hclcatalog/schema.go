package hclcatalog

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a catalog file.
type fileRoot struct {
	BaseURL hcl.Expression `hcl:"base_url,optional"`
	Groups  []*groupBlock  `hcl:"group,block"`
	Entries []*entryBlock  `hcl:"entry,block"`
}

type groupBlock struct {
	Name    string        `hcl:"name,label"`
	InPath  *bool         `hcl:"in_path,optional"`
	Groups  []*groupBlock `hcl:"group,block"`
	Entries []*entryBlock `hcl:"entry,block"`
}

type entryBlock struct {
	ID   string  `hcl:"id,label"`
	File *string `hcl:"file,optional"`
}
