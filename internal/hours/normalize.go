package hours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"stagevault/internal/model"
)

var (
	offPattern    = regexp.MustCompile(`(?i)off|holiday`)
	workedPattern = regexp.MustCompile(`(?i)work(ed)?`)
)

// toNumber normalizes a sheet cell to a number. Values arrive as numbers or
// formatted strings with grouping separators; anything unparseable or absent
// counts as zero.
func toNumber(v interface{}) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		cleaned := strings.NewReplacer(",", "", " ", "").Replace(value)
		if cleaned == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func toText(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}

// NormalizeRow converts a raw column-keyed row into an HoursRecord.
func NormalizeRow(row model.HoursRow) model.HoursRecord {
	return model.HoursRecord{
		Date:       toText(row["Date"]),
		Events:     toText(row["Events"]),
		StartTime:  toText(row["Start Time"]),
		EndTime:    toText(row["End Time"]),
		TotalHours: toNumber(row["Total Hours"]),
		NetHours:   toNumber(row["Net Hours"]),
		Status:     toText(row["Status"]),
		LastUpdate: toText(row["Last Update"]),
	}
}

// NormalizeRows converts a fetched batch of raw rows.
func NormalizeRows(rows []model.HoursRow) []model.HoursRecord {
	records := make([]model.HoursRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, NormalizeRow(row))
	}
	return records
}

// isOff reports whether the status text counts as a day off.
func isOff(status string) bool {
	return offPattern.MatchString(status)
}

// isWorked reports whether the status text counts as a day worked.
func isWorked(status string) bool {
	return workedPattern.MatchString(status)
}
