package export

import (
	"fmt"
	"time"
)

// VTEX OMS filters take UTC timestamps; the account operates on Brazil
// time, which stays on UTC-3 year round.
var localZone = time.FixedZone("UTC-3", -3*60*60)

// Now is the window's time source, swappable in tests.
var Now = time.Now

const (
	utcLayout   = "2006-01-02T15:04:05Z"
	localLayout = "2006-01-02 15:04:05"
)

// Window is an inclusive creation-date range in the account's local
// offset. Computed once per run, never persisted.
type Window struct {
	Start time.Time
	End   time.Time
}

// CreationWindow covers the last `days` days: local midnight `days` ago
// through 23:59:59 today.
func CreationWindow(days int) Window {
	now := Now().In(localZone)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, localZone)
	return Window{
		Start: midnight.AddDate(0, 0, -days),
		End:   time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, localZone),
	}
}

// StartUTC formats the window start for a query filter.
func (w Window) StartUTC() string {
	return w.Start.UTC().Format(utcLayout)
}

// EndUTC formats the window end for a query filter.
func (w Window) EndUTC() string {
	return w.End.UTC().Format(utcLayout)
}

// CreationDateFilter renders the OMS f_creationDate range expression.
func (w Window) CreationDateFilter() string {
	return fmt.Sprintf("creationDate:[%s TO %s]", w.StartUTC(), w.EndUTC())
}

// ToLocal converts an ISO timestamp to the local offset in the layout
// the exports use. Returns "" for empty or unparseable input.
func ToLocal(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.In(localZone).Format(localLayout)
}

// NowLocal stamps the extraction time in the local offset.
func NowLocal() string {
	return Now().In(localZone).Format(localLayout)
}
