package activity

import "strings"

type EntryType string

const (
	EntryTypeCatAdded      EntryType = "CAT_ADDED"
	EntryTypeCatEdited     EntryType = "CAT_EDITED"
	EntryTypeCatDeleted    EntryType = "CAT_DELETED"
	EntryTypeIDChanged     EntryType = "ID_CHANGED"
	EntryTypeIDRegenerated EntryType = "ID_REGENERATED"
)

type Source string

const (
	SourceAPI     Source = "api"
	SourceCLI     Source = "cli"
	SourceUnknown Source = "unknown"
)

// SourceHeader lo manda catctl --server para que la API registre el origen real.
const SourceHeader = "X-Activity-Source"

// ParseSource acepta sólo orígenes conocidos; el resto es SourceUnknown.
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceAPI:
		return SourceAPI
	case SourceCLI:
		return SourceCLI
	default:
		return SourceUnknown
	}
}
