package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ferdium/ferdium-themes/pkg/types"
)

// Validator checks raw manifests against the theme schema. The file names are
// only used to phrase messages.
type Validator struct {
	ManifestFile string
	PreviewFile  string
}

// DefaultValidator uses the conventional theme.json / preview.png names
var DefaultValidator = Validator{ManifestFile: "theme.json", PreviewFile: "preview.png"}

// Validate checks raw with the default file names
func Validate(raw types.RawManifest, folderName string, previewFileExists bool) []string {
	return DefaultValidator.Validate(raw, folderName, previewFileExists)
}

// Validate returns every schema violation in raw, in rule order. An empty
// result means the manifest is accepted. folderName is the source of truth for
// the theme id.
//
// A key counts as missing when it is absent or null. A present blank string is
// reported as an empty value and a present value of the wrong type as an
// unexpected value. Neither counts as missing, but a present id is still
// compared with folderName and a present version is still checked as semver.
func (v Validator) Validate(raw types.RawManifest, folderName string, previewFileExists bool) []string {
	var errs []string
	errs = append(errs, v.checkID(raw, folderName)...)
	errs = append(errs, v.checkName(raw)...)
	errs = append(errs, v.checkVersion(raw)...)
	errs = append(errs, v.checkPreview(raw, previewFileExists)...)
	errs = append(errs, v.checkUnknownKeys(raw)...)
	errs = append(errs, v.checkValues(raw)...)
	errs = append(errs, v.checkConfig(raw)...)
	return errs
}

func (v Validator) prefix() string {
	return fmt.Sprintf("The theme's %s", v.ManifestFile)
}

func (v Validator) checkID(raw types.RawManifest, folderName string) []string {
	if !raw.Has(KeyID) {
		return []string{fmt.Sprintf(
			"%s contains no 'id' field. This field should contain a unique ID made of letters (a-z, A-Z), numbers (0-9), hyphens (-), periods (.), and underscores (_)",
			v.prefix())}
	}
	id := text(raw[KeyID])

	var errs []string
	if strings.TrimSpace(id) != "" && !ValidID(id) {
		errs = append(errs, fmt.Sprintf(
			"%s defines an invalid theme ID (%s). Please make sure the 'id' field only contains letters (a-z, A-Z), numbers (0-9), hyphens (-), periods (.), and underscores (_)",
			v.prefix(), id))
	}
	if id != folderName {
		errs = append(errs, fmt.Sprintf("The theme's id (%s) does not match the folder name (%s)", id, folderName))
	}
	return errs
}

func (v Validator) checkName(raw types.RawManifest) []string {
	if raw.Has(KeyName) {
		return nil
	}
	return []string{fmt.Sprintf(
		"%s contains no 'name' field. This field should contain the name of the service (e.g. 'Google Keep')",
		v.prefix())}
}

func (v Validator) checkVersion(raw types.RawManifest) []string {
	if !raw.Has(KeyVersion) {
		return []string{fmt.Sprintf(
			"%s contains no 'version' field. This field should contain a semver-compatible version number for your theme (e.g. '1.0.0')",
			v.prefix())}
	}
	version := text(raw[KeyVersion])
	if !ValidVersion(version) {
		return []string{fmt.Sprintf("%s contains an invalid version number: %s", v.prefix(), version)}
	}
	return nil
}

func (v Validator) checkPreview(raw types.RawManifest, previewFileExists bool) []string {
	if raw.Has(KeyPreview) || previewFileExists {
		return nil
	}
	return []string{fmt.Sprintf(
		"%s contains no 'preview' field and no '%s' file. This field should contain a URL to a preview image for your theme or you can add a '%s' file to the theme folder and delete this field.",
		v.prefix(), v.PreviewFile, v.PreviewFile)}
}

func (v Validator) checkUnknownKeys(raw types.RawManifest) []string {
	unknown := unknownKeys(raw, TopLevelKeys)
	if len(unknown) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%s contains the following keys that are not recognized: %s",
		v.prefix(), strings.Join(unknown, ", "))}
}

// checkValues reports empty strings and values of the wrong shape, one error per key
func (v Validator) checkValues(raw types.RawManifest) []string {
	var errs []string
	for _, key := range sortedKeys(raw) {
		value := raw[key]
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok {
			switch {
			case strings.TrimSpace(s) == "":
				errs = append(errs, fmt.Sprintf("%s contains empty value for key: %s", v.prefix(), key))
			case objectKeys[key]:
				errs = append(errs, fmt.Sprintf("%s contains unexpected value for key: %s", v.prefix(), key))
			}
			continue
		}
		_, isObject := value.(map[string]any)
		if stringKeys[key] || (objectKeys[key] && !isObject) {
			errs = append(errs, fmt.Sprintf("%s contains unexpected value for key: %s", v.prefix(), key))
		}
	}
	return errs
}

func (v Validator) checkConfig(raw types.RawManifest) []string {
	cfg, ok := raw[KeyConfig].(map[string]any)
	if !ok {
		return nil
	}

	var errs []string
	if unknown := unknownKeys(cfg, ConfigKeys); len(unknown) > 0 {
		errs = append(errs, fmt.Sprintf("%s contains the following config keys that are not recognized: %s",
			v.prefix(), strings.Join(unknown, ", ")))
	}
	for _, key := range sortedKeys(cfg) {
		if s, ok := cfg[key].(string); ok && strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("%s contains empty value for key: %s.%s", v.prefix(), KeyConfig, key))
		}
	}
	return errs
}

// text renders a present scalar for comparison and messages
func text(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func unknownKeys(m map[string]any, known map[string]bool) []string {
	var unknown []string
	for key := range m {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
