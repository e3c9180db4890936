package permissions

import (
	_ "embed"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission declares which roles may call one route. Skip marks public
// endpoints that bypass authentication entirely.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// FindPermissions resolves the rule for a route pattern. An unlisted route
// yields the zero Permission, which the middleware treats as deny.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	return r.index[routeKey(method, path)]
}

// Get decodes the embedded permission table and builds the route index.
func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))
	for _, endpoint := range permissions.Endpoints {
		permissions.index[routeKey(endpoint.Method, endpoint.Path)] = endpoint
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
