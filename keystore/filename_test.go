package keystore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFileName(t *testing.T) {
	date := time.Date(2020, 1, 2, 3, 4, 5, 123456789, time.UTC)

	tests := []struct {
		name string
		loc  *time.Location
		date time.Time
		want string
	}{
		{
			name: "UTC",
			loc:  time.UTC,
			date: date,
			want: "UTC--2020-01-02T03-04-05.123456789Z--abcd",
		},
		{
			name: "nil location means UTC",
			loc:  nil,
			date: date,
			want: "UTC--2020-01-02T03-04-05.123456789Z--abcd",
		},
		{
			name: "positive offset",
			loc:  time.FixedZone("CET", 60*60),
			date: date,
			want: "UTC--2020-01-02T04-04-05.12345678906000--abcd",
		},
		{
			name: "wide positive offset",
			loc:  time.FixedZone("NPT", 5*60*60+45*60),
			date: date,
			want: "UTC--2020-01-02T08-49-05.12345678934500--abcd",
		},
		{
			name: "negative offset",
			loc:  time.FixedZone("EST", -5*60*60),
			date: date,
			want: "UTC--2020-01-01T22-04-05.123456789-30000--abcd",
		},
		{
			name: "zero offset that is not UTC",
			loc:  time.FixedZone("GMT", 0),
			date: date,
			want: "UTC--2020-01-02T03-04-05.12345678900000--abcd",
		},
		{
			name: "fixed zone named UTC",
			loc:  time.FixedZone("UTC", 0),
			date: date,
			want: "UTC--2020-01-02T03-04-05.123456789Z--abcd",
		},
		{
			name: "whole seconds keep nine digits",
			loc:  time.UTC,
			date: time.Date(2021, 12, 31, 23, 59, 59, 0, time.UTC),
			want: "UTC--2021-12-31T23-59-59.000000000Z--abcd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateFileName("abcd", tt.date, tt.loc))
		})
	}
}
