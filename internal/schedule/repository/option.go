package repository

// ListOptions holds the parameters for listing schedule records.
type ListOptions struct {
	Ficha        string
	Coordinacion string
}

// RawEvent is a schedule record before normalization.
type RawEvent struct {
	Venue        string
	Description  string
	Room         string
	DateTime     string // ISO datetime as served upstream
	StartTime    string
	EndTime      string
	FichaID      string
	WorkshopName string
	TrainerName  string
}

// Wrapper groups the records of one response element, in payload order.
type Wrapper struct {
	Events []RawEvent
}
