package cache

// Key identifies one cached query: a resource name plus the canonical
// encoding of its parameters.
type Key struct {
	Resource string
	Params   string
}

func NewKey(resource, params string) Key {
	return Key{Resource: resource, Params: params}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + "/" + k.Params
}

// matches reports whether k belongs to resource, or is exactly resource/params
func (k Key) matches(resource, params string) bool {
	if k.Resource != resource {
		return false
	}
	return params == "" || k.Params == params
}
