// Package catalog resolves human-readable factor and level names into the
// structured values of package ipo, and back again for presentation.
//
// Two semicolon-separated tables are understood:
//
//	factors.csv     one factor per line:   Name;level1;level2;...
//	infeasible.csv  one pair per line:     levelA;levelB
//
// Level names are matched case- and whitespace-insensitively; factor names
// are headings only and never match. When a name occurs under several
// factors, the first occurrence wins.
//
// A *Catalog satisfies render.Labeler.
package catalog
