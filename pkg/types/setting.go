package types

// Setting is a single key/value configuration row. Values are opaque at
// this layer; interpretation belongs to the caller.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Well-known setting keys.
const (
	// SettingAPIKey holds the credential the assist layer uses for the
	// hosted model API.
	SettingAPIKey = "apiKey"
)
