package keystore

import (
	"fmt"
	"time"
)

const (
	fileNamePrefix     = "UTC"
	fileNameDelimiter  = "--"
	fileNameTimeLayout = "2006-01-02T15-04-05.000000000"
)

// GenerateFileName builds a key file name: prefix, timestamp and identifier joined by "--".
// The timestamp ends in "Z" for time.UTC or any zero-offset zone named "UTC"; any other
// zone, including zero-offset ones such as "GMT", appends its offset in minutes as a
// zero-padded 3+ digit number followed by "00".
// Example: GenerateFileName("abcd", 2020-01-02T03:04:05.123456789Z, time.UTC) =
// "UTC--2020-01-02T03-04-05.123456789Z--abcd"
func GenerateFileName(identifier string, date time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t := date.In(loc)
	return fileNamePrefix + fileNameDelimiter + t.Format(fileNameTimeLayout) + zoneSuffix(t) + fileNameDelimiter + identifier
}

func zoneSuffix(t time.Time) string {
	name, offset := t.Zone()
	if t.Location() == time.UTC || (offset == 0 && name == "UTC") {
		return "Z"
	}
	return fmt.Sprintf("%03d00", offset/60)
}
