package resolve

import (
	"strconv"
	"strings"
)

// RefKind tags the shape an upstream reference arrived in.
type RefKind int

const (
	RefAbsent RefKind = iota
	RefID
	RefCode
	RefInline
)

// Ref is a polymorphic reference to a catalog entity (airline, city,
// stopover). Upstream screens send the same relation as a numeric id,
// a code string, or the embedded object itself.
type Ref struct {
	Kind   RefKind
	ID     int64
	Code   string
	Inline Record
}

// ParseRef classifies a raw record value into a Ref. Numeric strings
// count as ids; any other non-empty string is a code; objects are
// inline entities.
func ParseRef(v any) Ref {
	switch val := v.(type) {
	case nil:
		return Ref{Kind: RefAbsent}
	case Record:
		return Ref{Kind: RefInline, Inline: val}
	case map[string]any:
		return Ref{Kind: RefInline, Inline: Record(val)}
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return Ref{Kind: RefAbsent}
		}

		if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return Ref{Kind: RefID, ID: id}
		}

		return Ref{Kind: RefCode, Code: trimmed}
	default:
		if num, ok := Money(val); ok {
			return Ref{Kind: RefID, ID: int64(num)}
		}

		return Ref{Kind: RefAbsent}
	}
}

// DisplayInfo is the catalog's view of one entity.
type DisplayInfo struct {
	ID   int64
	Code string
	Name string
}

// Lookup is the capability a catalog must offer for display
// resolution. Code and name lookups are case-insensitive.
type Lookup interface {
	ByID(id int64) (DisplayInfo, bool)
	ByCode(code string) (DisplayInfo, bool)
	ByName(name string) (DisplayInfo, bool)
}

// Display resolves ref against the catalog and returns the best
// human-readable label: the catalog entry's name, else its code, else
// the raw identifier as a string. The bool result is false only when
// the reference is absent entirely.
func Display(c Lookup, ref Ref) (string, bool) {
	switch ref.Kind {
	case RefID:
		if c != nil {
			if entry, ok := c.ByID(ref.ID); ok {
				return label(entry), true
			}
		}

		return strconv.FormatInt(ref.ID, 10), true
	case RefCode:
		if c != nil {
			if entry, ok := c.ByCode(ref.Code); ok {
				return label(entry), true
			}

			if entry, ok := c.ByName(ref.Code); ok {
				return label(entry), true
			}
		}

		return ref.Code, true
	case RefInline:
		if name := Text(ref.Inline, "name"); name != "" {
			return name, true
		}

		if code := Text(ref.Inline, "code"); code != "" {
			return Display(c, Ref{Kind: RefCode, Code: code})
		}

		if id, ok := Money(ref.Inline["id"]); ok {
			return Display(c, Ref{Kind: RefID, ID: int64(id)})
		}

		return "", false
	default:
		return "", false
	}
}

func label(entry DisplayInfo) string {
	if entry.Name != "" {
		return entry.Name
	}

	return entry.Code
}
