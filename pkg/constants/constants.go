// Package constants holds shared application constants.
package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// HeaderRequesterEmail carries the authenticated requester's email,
	// set by the upstream auth layer. Absent means unknown requester.
	HeaderRequesterEmail = "X-Requester-Email"
)
