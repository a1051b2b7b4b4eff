package validation

// Messages maps a violation kind to replacement message text.
type Messages map[Kind]string

// textOverridable lists the kinds whose messages TextValidator.CustomMessage
// may replace. Type and pattern-validity failures keep their messages.
var textOverridable = []Kind{KindEmpty, KindMin, KindMax, KindRequired}

// ParseMessages converts a string-keyed map, such as one loaded from
// configuration, into Messages. Keys are taken verbatim.
func ParseMessages(m map[string]string) Messages {
	if len(m) == 0 {
		return nil
	}
	out := make(Messages, len(m))
	for k, v := range m {
		out[Kind(k)] = v
	}
	return out
}

// TextOverridableKeys returns the kinds TextValidator.CustomMessage accepts.
func TextOverridableKeys() []string {
	keys := make([]string, len(textOverridable))
	for i, k := range textOverridable {
		keys[i] = string(k)
	}
	return keys
}
