package component

import "github.com/milk9111/minimapicons/minimap"

// EntityInfo holds the identity fields the minimap rules key on.
type EntityInfo struct {
	Category minimap.Category
	League   minimap.League
	Path     string
}

var EntityInfoComponent = NewComponent[EntityInfo]()
