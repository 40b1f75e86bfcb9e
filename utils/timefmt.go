package utils

import (
	"car-auction/internal/auctionerrors"
	"fmt"
	"strings"
	"time"
)

// EndTimeLayout is the accepted input format for auction end times (naive local time)
const EndTimeLayout = "2006-01-02 15:04:05"

// ParseEndTime parses a "YYYY-MM-DD HH:MM:SS" timestamp in the local time zone
func ParseEndTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(EndTimeLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse end time %q: %w - use YYYY-MM-DD HH:MM:SS", value, auctionerrors.ErrInvalidTimeFormat)
	}
	return t, nil
}

// FormatEndTime renders t in the same layout ParseEndTime accepts
func FormatEndTime(t time.Time) string {
	return t.In(time.Local).Format(EndTimeLayout)
}
