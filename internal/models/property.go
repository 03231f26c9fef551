package models

// Property is a single custom property written on the style root.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
