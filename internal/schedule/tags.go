package schedule

import "strings"

// Tag is a cosmetic event-kind marker, independent of urgency.
type Tag string

const (
	TagVitaminas Tag = "vitaminas"
	TagAlimento  Tag = "alimento"
	TagMelaza    Tag = "melaza"
	TagSalida    Tag = "salida"
)

// TagRule matches an event-type substring to a display tag.
type TagRule struct {
	Pattern string
	Tag     Tag
}

// TagRules is evaluated in order, first match wins. Order matters: the
// backend's event-type vocabulary does not guarantee the patterns are
// mutually exclusive.
var TagRules = []TagRule{
	{Pattern: "vitaminas", Tag: TagVitaminas},
	{Pattern: "cambio", Tag: TagAlimento},
	{Pattern: "melaza", Tag: TagMelaza},
	{Pattern: "salida", Tag: TagSalida},
}

// TagFor returns the display tag for an event type, if any rule matches.
func TagFor(eventType string) (Tag, bool) {
	for _, rule := range TagRules {
		if strings.Contains(eventType, rule.Pattern) {
			return rule.Tag, true
		}
	}
	return "", false
}
