package storage

import "fmt"

// ObjectKey locates one run's archived artifact.
type ObjectKey struct {
	Source    string // data provider, e.g. "sunrise-sunset"
	Date      string // in YYYY-MM-DD format
	RunID     string // UUID from the scheduler or generated per run
	Extension string
}

func (k ObjectKey) Key() string {
	return fmt.Sprintf("%s/%s/%s.%s", k.Source, k.Date, k.RunID, k.Extension)
}
