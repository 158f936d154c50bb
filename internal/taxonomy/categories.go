// Package taxonomy defines the fixed set of professional categories a resume
// can be classified into. The table is seeded once at configuration time and
// never changes at runtime; category IDs are the stable integer labels the
// pretrained classifier was trained against.
package taxonomy

import (
	"fmt"
	"sort"
)

// Category pairs a stable integer ID with its display name.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// categoryNames maps classifier label IDs to display names. IDs are not
// contiguous by accident of the training label encoding; do not renumber.
var categoryNames = map[int]string{
	0:  "Advocate",
	1:  "Arts",
	2:  "Automation Testing",
	3:  "Blockchain",
	4:  "Business Analyst",
	5:  "Civil Engineer",
	6:  "Data Science",
	7:  "Database",
	8:  "DevOps Engineer",
	9:  "DotNet Developer",
	10: "ETL Developer",
	11: "Electrical Engineering",
	12: "HR",
	13: "Hadoop",
	14: "Health and fitness",
	15: "Java Developer",
	16: "Mechanical Engineer",
	17: "Network Security Engineer",
	18: "Operations Manager",
	19: "PMO",
	20: "Python Developer",
	21: "SAP Developer",
	22: "Sales",
	23: "Testing",
	24: "Web Designing",
}

// Name returns the display name for a category ID. Unmapped IDs yield a
// placeholder name rather than an error so a stale model file cannot take
// down a prediction.
func Name(id int) string {
	if name, ok := categoryNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Category (%d)", id)
}

// Lookup returns the category for an ID and whether it is a known label.
func Lookup(id int) (Category, bool) {
	name, ok := categoryNames[id]
	if !ok {
		return Category{}, false
	}
	return Category{ID: id, Name: name}, true
}

// All returns every category ordered by ID, for seeding the categories table
// and for diagnostics output.
func All() []Category {
	out := make([]Category, 0, len(categoryNames))
	for id, name := range categoryNames {
		out = append(out, Category{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of categories in the fixed table.
func Count() int {
	return len(categoryNames)
}
