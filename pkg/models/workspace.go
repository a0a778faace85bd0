package models

import "encoding/json"

// DefaultSharingPreferences lists the groups new resources are shared with
type DefaultSharingPreferences struct {
	DefaultSharingGroups []string `json:"default_sharing_groups"`
}

type ShareOptionType string

const (
	ShareOptionUser  ShareOptionType = "user"
	ShareOptionGroup ShareOptionType = "group"
	ShareOptionKey   ShareOptionType = "key"
)

// ShareOption is a principal a workspace resource can be shared with
type ShareOption struct {
	Name string          `json:"name"`
	ID   string          `json:"id"`
	Type ShareOptionType `json:"type"`
}

// UpdateUserAutoProvisioningRequest is the body of POST v1/workspace/user-auto-provisioning
type UpdateUserAutoProvisioningRequest struct {
	Enabled bool `json:"enabled"`
}

// UpdateDefaultSharingPreferencesRequest is the body of POST v1/workspace/default-sharing-preferences
type UpdateDefaultSharingPreferencesRequest struct {
	DefaultSharingGroups []string `json:"default_sharing_groups"`
}

// MarshalJSON encodes a nil group list as an empty array
func (r UpdateDefaultSharingPreferencesRequest) MarshalJSON() ([]byte, error) {
	type alias UpdateDefaultSharingPreferencesRequest
	out := alias(r)
	if out.DefaultSharingGroups == nil {
		out.DefaultSharingGroups = []string{}
	}
	return json.Marshal(out)
}
