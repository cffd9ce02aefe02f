package normalize

import "strings"

// aliasRule names the key pair one legacy object shape stores its two
// semantic parts under. Rules are tried in fixed precedence order; the
// first rule that extracts anything wins, which replaces duck-typing
// with an explicit, testable table.
type aliasRule struct {
	primary   string // degree / program / certificate name
	secondary string // school / institution / issuing organization
}

var educationRules = []aliasRule{
	{primary: "name", secondary: "place"},
	{primary: "degree", secondary: "school"},
	{primary: "type", secondary: "school"},
}

var certificateRules = []aliasRule{
	{primary: "name", secondary: "organization"},
	{primary: "certificate", secondary: "organization"},
	{primary: "title", secondary: "issuer"},
}

// applyRules reshapes a legacy object entry into its display string.
// Both parts join with sep; a lone part stands alone. An object no rule
// can extract from contributes nothing.
func applyRules(m map[string]any, rules []aliasRule, sep string) string {
	for _, r := range rules {
		primary := field(m, r.primary)
		secondary := field(m, r.secondary)
		if primary == "" && secondary == "" {
			continue
		}
		switch {
		case primary == "":
			return secondary
		case secondary == "":
			return primary
		default:
			return primary + sep + secondary
		}
	}
	return ""
}

// DegreePart returns the leading part of an education display entry,
// used for rank lookups against the reference education table.
func DegreePart(entry string) string {
	if i := strings.Index(entry, " at "); i > 0 {
		return entry[:i]
	}
	return entry
}
