package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTpl(t *testing.T) {
	// UnixMilli formats in local time, so build the timestamp in local time too
	ts := time.Date(2023, 11, 10, 0, 0, 0, 0, time.Local).UnixMilli()

	assert.Equal(t, "2023.11.10", FormatDateTpl(ts, "YYYY.MM.DD"))
	assert.Equal(t, "10/11/2023", FormatDateTpl(ts, "DD/MM/YYYY"))
	assert.Equal(t, "2023-11-10 00:00", FormatDateTpl(ts, "YYYY-MM-DD hh:mm"))
	assert.Equal(t, "", FormatDateTpl(0, "YYYY"))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "5s", HumanDuration(5*time.Second))
	assert.Equal(t, "1m 30s", HumanDuration(90*time.Second))
	assert.Equal(t, "2h 0m 5s", HumanDuration(2*time.Hour+5*time.Second))
	assert.Equal(t, "1d 1h 0m 0s", HumanDuration(25*time.Hour))
	assert.Equal(t, "10s", HumanDuration(-10*time.Second))
}
