package models

import (
	"strconv"
	"time"
)

// Timestamp wraps time.Time to marshal as epoch milliseconds, which is how
// the catalog API represents instants on the wire.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

func (t Timestamp) String() string {
	return t.Time.Format(time.RFC3339)
}
