package domain

// Goals holds the crowdfunding numbers. After any client-side merge these are
// always the server's values, never a locally cached copy.
type Goals struct {
	Min      float64 `json:"min"`
	Opt      float64 `json:"opt"`
	Raised   float64 `json:"raised"`
	DaysLeft int     `json:"daysLeft"`
}

// Project is the campaign metadata served with the seed.
type Project struct {
	Title       string            `json:"title"`
	Tagline     string            `json:"tagline"`
	Category    string            `json:"category"`
	Location    string            `json:"location"`
	Description []string          `json:"description"`
	Links       map[string]string `json:"links"`
	Goals       Goals             `json:"goals"`
}

// EntryType classifies a timeline entry.
type EntryType string

const (
	EntryUpdate    EntryType = "update"
	EntryHito      EntryType = "hito"
	EntryEvento    EntryType = "evento"
	EntryPrensa    EntryType = "prensa"
	EntryFinanzas  EntryType = "finanzas"
	EntryContenido EntryType = "contenido"
	EntryAliados   EntryType = "aliados"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryUpdate, EntryHito, EntryEvento, EntryPrensa, EntryFinanzas, EntryContenido, EntryAliados:
		return true
	}
	return false
}

// TimelineEntry lives only in the client's local state; it is never sent to
// the server.
type TimelineEntry struct {
	Id         string    `json:"id"`
	Date       string    `json:"date" validate:"required"`
	Type       EntryType `json:"type"`
	Title      string    `json:"title" validate:"required"`
	Body       string    `json:"body"`
	Tags       []string  `json:"tags"`
	Links      []string  `json:"links"`
	Archived   bool      `json:"archived"`
	Importance string    `json:"importance"`
}

// SeedDocument is the server-authoritative baseline: project metadata plus the
// default timeline entries a fresh client starts with.
type SeedDocument struct {
	Project Project         `json:"project"`
	Entries []TimelineEntry `json:"entries"`
}
