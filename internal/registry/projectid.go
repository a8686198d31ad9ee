// Where: cli/internal/registry/projectid.go
// What: Keboola project ID extraction from project links.
// Why: Project IDs are derived from links, never entered by hand.
package registry

import "regexp"

var projectLinkPattern = regexp.MustCompile(`^https://.*keboola.*/projects/(\d+).*$`)

// ExtractProjectID returns the numeric project ID embedded in a Keboola
// project link, or "" when the link does not match.
func ExtractProjectID(link string) string {
	match := projectLinkPattern.FindStringSubmatch(link)
	if match == nil {
		return ""
	}
	return match[1]
}
