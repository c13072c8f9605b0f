package models

// Ingredient is a catalog entry. The pair (Name, MeasurementUnit) is unique.
type Ingredient struct {
	ID              string
	Name            string
	MeasurementUnit string
}

// Tag labels recipes (e.g. "Breakfast"). Name, Color and Slug are each unique.
type Tag struct {
	ID    string
	Name  string
	Color string
	Slug  string
}

// TagColors lists the colors a tag may use.
var TagColors = []string{"#0505ff", "#ddff03", "#738678", "#ff0000"}
