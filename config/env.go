package config

import "strings"

// api.url is read from AREACTL_API_URL
var envKeyReplacer = strings.NewReplacer(".", "_")
