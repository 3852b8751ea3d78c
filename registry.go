package tfdocs

import (
	"fmt"
	"regexp"
)

// resourcePattern matches full registry URLs as well as bare
// namespace/provider/version paths, e.g.
// "hashicorp/aws/5.100.0/docs/resources/lb".
var resourcePattern = regexp.MustCompile(
	`(?:https?://registry\.terraform\.io/providers/)?` +
		`([\w-]+)/([\w-]+)/([\w.-]+)/docs/resources/(\w+)`)

// ResourceURL identifies a resource documentation page on the
// Terraform Registry.
type ResourceURL struct {
	Namespace string `json:"namespace"`
	Provider  string `json:"provider"`
	Version   string `json:"version"` // version string or "latest"
	Resource  string `json:"resource"`
}

// String returns the full registry URL for the resource page.
func (u *ResourceURL) String() string {
	return fmt.Sprintf(
		"https://registry.terraform.io/providers/%s/%s/%s/docs/resources/%s",
		u.Namespace, u.Provider, u.Version, u.Resource)
}

// ParseResourceURL parses a Terraform Registry resource documentation
// URL or bare path into its components.
// Returns EINVALID if the input does not identify a resource page.
func ParseResourceURL(raw string) (*ResourceURL, error) {
	m := resourcePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, Errorf(EINVALID, "invalid Terraform Registry resource URL: %q", raw)
	}
	return &ResourceURL{
		Namespace: m[1],
		Provider:  m[2],
		Version:   m[3],
		Resource:  m[4],
	}, nil
}
