package domain

// Genre is a label in the music taxonomy, unique by name.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
