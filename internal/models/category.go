// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package models

import "strings"

// Category is a label from the closed blog category set.
type Category string

// The closed category set.
const (
	CategoryTechnologies Category = "Technologies"
	CategoryProgramming  Category = "Programming"
	CategoryDesign       Category = "Design"
	CategoryBusiness     Category = "Business"
	CategoryScience      Category = "Science"
	CategoryLifestyle    Category = "Lifestyle"
	CategoryTravel       Category = "Travel"
	CategoryFood         Category = "Food"
	CategoryHealth       Category = "Health"
	CategoryEducation    Category = "Education"
)

// allCategories lists the closed set in a stable order.
var allCategories = []Category{
	CategoryTechnologies,
	CategoryProgramming,
	CategoryDesign,
	CategoryBusiness,
	CategoryScience,
	CategoryLifestyle,
	CategoryTravel,
	CategoryFood,
	CategoryHealth,
	CategoryEducation,
}

// categoryGraph is the related-category adjacency. It is symmetric by
// convention and has an entry for every category in the closed set.
var categoryGraph = map[Category][]Category{
	CategoryTechnologies: {CategoryProgramming, CategoryScience, CategoryDesign},
	CategoryProgramming:  {CategoryTechnologies, CategoryEducation},
	CategoryDesign:       {CategoryTechnologies, CategoryLifestyle},
	CategoryBusiness:     {CategoryEducation},
	CategoryScience:      {CategoryTechnologies, CategoryHealth, CategoryEducation},
	CategoryLifestyle:    {CategoryTravel, CategoryFood, CategoryHealth, CategoryDesign},
	CategoryTravel:       {CategoryLifestyle, CategoryFood},
	CategoryFood:         {CategoryLifestyle, CategoryHealth, CategoryTravel},
	CategoryHealth:       {CategoryScience, CategoryFood, CategoryLifestyle},
	CategoryEducation:    {CategoryScience, CategoryProgramming, CategoryBusiness},
}

// Categories returns the closed category set.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory resolves a label to a category, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	_, ok := categoryGraph[c]
	return ok
}

// Canonical returns the closed-set spelling of c, or false when c is unknown.
func (c Category) Canonical() (Category, bool) {
	if c.Valid() {
		return c, true
	}
	return ParseCategory(string(c))
}

// RelatedCategories returns the categories related to c.
// Unknown categories have no relations.
func RelatedCategories(c Category) []Category {
	related := categoryGraph[c]
	out := make([]Category, len(related))
	copy(out, related)
	return out
}

// IsRelated reports whether b is in the related set of a.
func IsRelated(a, b Category) bool {
	for _, r := range categoryGraph[a] {
		if r == b {
			return true
		}
	}
	return false
}
