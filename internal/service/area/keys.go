package area

import (
	"areaadmin/internal/model"
	"areaadmin/pkg/cache"
)

// query resources, list keys never share a prefix with detail keys
const (
	ResourceAreas = "areas"
	ResourceArea  = "area"
)

func ListKey(state model.TableState) cache.Key {
	return cache.NewKey(ResourceAreas, state.Key())
}

func DetailKey(pk string) cache.Key {
	return cache.NewKey(ResourceArea, pk)
}
