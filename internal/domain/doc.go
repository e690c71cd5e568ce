// Package domain contains types shared by the entity sub-packages.
// The item entity lives in domain/item and the form validation protocol in
// domain/validation; this root package holds the sentinel errors every layer
// maps to and from.
package domain
