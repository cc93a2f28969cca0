package entity

// StoreConfig is the admin-editable branding applied to the presentation
// layer. Values are accepted as-is; malformed colors or unreachable logo URLs
// surface downstream as broken rendering, never as errors here.
type StoreConfig struct {
	LogoURL      string `json:"logo_url"`
	PrimaryColor string `json:"primary_color"`
}
