package office

// Office rows are pre-populated and never mutated by this service.
type Office struct {
	ID        string
	Name      string
	Number    string
	Latitude  float64
	Longitude float64
}
