package manifest

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Top-level manifest keys
const (
	KeyID          = "id"
	KeyName        = "name"
	KeyDescription = "description"
	KeyAuthor      = "author"
	KeyVersion     = "version"
	KeyPreview     = "preview"
	KeyConfig      = "config"
	KeyAliases     = "aliases"
)

// TopLevelKeys is the set of keys a manifest may contain
var TopLevelKeys = map[string]bool{
	KeyID:          true,
	KeyName:        true,
	KeyDescription: true,
	KeyAuthor:      true,
	KeyVersion:     true,
	KeyPreview:     true,
	KeyConfig:      true,
	KeyAliases:     true,
}

// ConfigKeys is the whitelist of keys allowed under "config"
var ConfigKeys = map[string]bool{
	"serviceURL":                             true,
	"hasTeamId":                              true,
	"urlInputPrefix":                         true,
	"urlInputSuffix":                         true,
	"hasHostedOption":                        true,
	"hasCustomUrl":                           true,
	"hasNotificationSound":                   true,
	"hasDirectMessages":                      true,
	"hasIndirectMessages":                    true,
	"allowFavoritesDelineationInUnreadCount": true,
	"message":                                true,
	"disablewebsecurity":                     true,
}

// stringKeys must hold strings when present
var stringKeys = map[string]bool{
	KeyID:          true,
	KeyName:        true,
	KeyDescription: true,
	KeyAuthor:      true,
	KeyVersion:     true,
	KeyPreview:     true,
}

// objectKeys must hold objects when present
var objectKeys = map[string]bool{
	KeyConfig:  true,
	KeyAliases: true,
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidID reports whether id is made only of letters, digits, '.', '_' and '-'
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ValidVersion reports whether v is a semantic version. Surrounding
// whitespace and a single leading "v" are tolerated; the rest must be a strict
// MAJOR.MINOR.PATCH with optional pre-release and build metadata.
func ValidVersion(v string) bool {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return false
	}
	_, err := semver.StrictNewVersion(v)
	return err == nil
}
