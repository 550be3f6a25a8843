// internal/domain/homework/check.go
package homework

import (
	"encoding/json"
	"fmt"
	"math"

	"homework_status_bot/internal/domain/failure"
)

// Keys of the homework API payload.
const (
	KeyHomeworks    = "homeworks"
	KeyCurrentDate  = "current_date"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// CheckResponse validates the decoded API payload and returns its homework list unchanged.
func CheckResponse(response any) ([]any, error) {
	payload, ok := response.(map[string]any)
	if !ok {
		return nil, failure.New(failure.KindTypeMismatch, "API response is %T, expected an object", response)
	}

	homeworks, hasHomeworks := payload[KeyHomeworks]
	_, hasDate := payload[KeyCurrentDate]
	if !hasHomeworks || !hasDate {
		return nil, failure.New(failure.KindEmptyResponse, "empty response from API: keys %q and %q are required", KeyHomeworks, KeyCurrentDate)
	}

	list, ok := homeworks.([]any)
	if !ok {
		return nil, failure.New(failure.KindTypeMismatch, "%q is %T, expected a list", KeyHomeworks, homeworks)
	}
	return list, nil
}

// ParseStatus builds the user message for one homework record.
func ParseStatus(record any) (string, error) {
	hw, ok := record.(map[string]any)
	if !ok {
		return "", failure.New(failure.KindTypeMismatch, "homework record is %T, expected an object", record)
	}

	rawName, ok := hw[KeyHomeworkName]
	if !ok {
		return "", failure.New(failure.KindMissingField, "key %q is missing in homework record", KeyHomeworkName)
	}
	name := fmt.Sprint(rawName)

	status, _ := hw[KeyStatus].(string)
	verdict, ok := Verdicts[Status(status)]
	if !ok {
		return "", failure.New(failure.KindUnknownStatus, "unknown homework status: %v", hw[KeyStatus])
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\" %s", name, verdict), nil
}

// RecordReport extracts the name/status pair of a homework record for change detection.
func RecordReport(record any) Report {
	hw, _ := record.(map[string]any)
	var r Report
	if name, ok := hw[KeyHomeworkName]; ok {
		r.Name = fmt.Sprint(name)
	}
	r.Output, _ = hw[KeyStatus].(string)
	return r
}

// CursorFrom returns the cursor reported by the API, or previous when the
// payload has none or it is not an integral number.
func CursorFrom(response any, previous int64) int64 {
	payload, ok := response.(map[string]any)
	if !ok {
		return previous
	}

	switch v := payload[KeyCurrentDate].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v)
		}
	case int:
		return int64(v)
	case int64:
		return v
	}
	return previous
}
