package validation

// MessageSource looks up a message template by code and renders it with
// positional arguments. Implementations live outside the domain.
type MessageSource interface {
	// Message returns the rendered message for code and whether code is
	// known to the source.
	Message(code string, args []any) (string, bool)
}

// ResolveMessage renders res with src, trying each code in order, then the
// default message. When nothing matches it returns the least specific code.
func ResolveMessage(src MessageSource, res Resolvable) string {
	if src != nil {
		for _, code := range res.Codes {
			if msg, ok := src.Message(code, res.Arguments); ok {
				return msg
			}
		}
	}
	if res.DefaultMessage != "" {
		return res.DefaultMessage
	}
	return res.Code()
}
