package validation

import (
	"strings"
)

// CodeFormat controls where the error code is placed in a candidate code.
type CodeFormat int

const (
	// PrefixErrorCode yields "required.item.itemName".
	PrefixErrorCode CodeFormat = iota
	// PostfixErrorCode yields "item.itemName.required".
	PostfixErrorCode
)

const codeSeparator = "."

// CodesResolver computes candidate message codes for validation errors, most
// specific first. The zero value is ready to use with PrefixErrorCode and no
// prefix.
type CodesResolver struct {
	prefix string
	format CodeFormat
}

// ResolverOption configures a CodesResolver.
type ResolverOption func(*CodesResolver)

// WithPrefix prepends prefix to every candidate code.
func WithPrefix(prefix string) ResolverOption {
	return func(r *CodesResolver) {
		r.prefix = prefix
	}
}

// WithFormat selects the placement of the error code.
func WithFormat(format CodeFormat) ResolverOption {
	return func(r *CodesResolver) {
		r.format = format
	}
}

// NewCodesResolver creates a CodesResolver with the given options.
func NewCodesResolver(opts ...ResolverOption) *CodesResolver {
	r := &CodesResolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveObjectCodes returns the codes for an object error:
//
//	{code}.{objectName}
//	{code}
func (r *CodesResolver) ResolveObjectCodes(code, objectName string) []string {
	if r == nil {
		r = &CodesResolver{}
	}
	return []string{
		r.postProcess(r.join(code, objectName)),
		r.postProcess(code),
	}
}

// ResolveFieldCodes returns the codes for a field error:
//
//	{code}.{objectName}.{field}
//	{code}.{field}
//	{code}.{fieldType}   (only when fieldType is known)
//	{code}
//
// Indexed or keyed paths such as "tags[0].name" also produce the
// de-indexed form "tags.name", and nested paths such as "address.street"
// add the last segment ("street") to the codes without the object name.
func (r *CodesResolver) ResolveFieldCodes(code, objectName, field, fieldType string) []string {
	if r == nil {
		r = &CodesResolver{}
	}

	fields := fieldPaths(field)
	codes := make([]string, 0, 2*len(fields)+2)
	seen := make(map[string]bool, cap(codes))
	add := func(c string) {
		c = r.postProcess(c)
		if !seen[c] {
			seen[c] = true
			codes = append(codes, c)
		}
	}

	for _, f := range fields {
		add(r.join(code, objectName+codeSeparator+f))
	}
	if dot := strings.LastIndex(field, codeSeparator); dot >= 0 {
		fields = append(fields, fieldPaths(field[dot+1:])...)
	}
	for _, f := range fields {
		add(r.join(code, f))
	}
	if fieldType != "" {
		add(r.join(code, fieldType))
	}
	add(code)

	return codes
}

func (r *CodesResolver) join(code, path string) string {
	if r.format == PostfixErrorCode {
		return path + codeSeparator + code
	}
	return code + codeSeparator + path
}

func (r *CodesResolver) postProcess(code string) string {
	return r.prefix + code
}

// fieldPaths returns field followed by its de-indexed variants, from the
// most specific to the least: "a[0].b[1]" → a[0].b[1], a[0].b, a.b.
func fieldPaths(field string) []string {
	paths := []string{field}
	if !strings.Contains(field, "[") {
		return paths
	}

	current := field
	for {
		end := strings.LastIndex(current, "]")
		if end < 0 {
			break
		}
		start := strings.LastIndex(current[:end], "[")
		if start < 0 {
			break
		}
		current = current[:start] + current[end+1:]
		paths = append(paths, current)
	}
	return paths
}
