// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cache

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unsupported kind names.
var ErrUnknownKind = errors.New("unknown cache kind")

// Kind partitions cached results by the operation that produced them.
type Kind string

const (
	// KindAll addresses every partition. It is only valid for clears.
	KindAll Kind = "all"
	// KindPrimary holds strategy-based related-article results.
	KindPrimary Kind = "primary"
	// KindPersonalized holds history-driven results.
	KindPersonalized Kind = "personalized"
)

// Kinds returns the storable kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindPrimary, KindPersonalized}
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a kind name. An empty name means KindAll.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case "":
		return KindAll, nil
	case KindAll, KindPrimary, KindPersonalized:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
