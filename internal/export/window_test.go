package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	old := Now
	Now = func() time.Time { return at }
	t.Cleanup(func() { Now = old })
}

func TestCreationWindowLastFourDays(t *testing.T) {
	fixNow(t, time.Date(2024, 6, 10, 15, 0, 0, 0, localZone))

	w := CreationWindow(4)

	assert.Equal(t, time.Date(2024, 6, 6, 0, 0, 0, 0, localZone).Unix(), w.Start.Unix())
	assert.Equal(t, time.Date(2024, 6, 10, 23, 59, 59, 0, localZone).Unix(), w.End.Unix())
}

func TestCreationDateFilterIsUTC(t *testing.T) {
	fixNow(t, time.Date(2024, 6, 10, 15, 0, 0, 0, localZone))

	w := CreationWindow(4)

	assert.Equal(t, "2024-06-06T03:00:00Z", w.StartUTC())
	assert.Equal(t, "2024-06-11T02:59:59Z", w.EndUTC())
	assert.Equal(t, "creationDate:[2024-06-06T03:00:00Z TO 2024-06-11T02:59:59Z]", w.CreationDateFilter())
}

func TestToLocal(t *testing.T) {
	assert.Equal(t, "2024-06-10 09:00:00", ToLocal("2024-06-10T12:00:00Z"))
	assert.Equal(t, "2024-06-10 12:00:00", ToLocal("2024-06-10T12:00:00-03:00"))
	assert.Equal(t, "", ToLocal(""))
	assert.Equal(t, "", ToLocal("not a timestamp"))
}

func TestNowLocal(t *testing.T) {
	fixNow(t, time.Date(2024, 6, 10, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-10 15:30:00", NowLocal())
}
