package jet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The shipped message expects yyyy-MM-ddTHH:mm:ss.fffffff-HH:MM. The API
// only accepts it with a zeroed fraction and a -00:00 offset, so the UTC
// wall clock is written with that literal suffix.
const (
	shipmentTimeLayout = "2006-01-02T15:04:05"
	shipmentTimeSuffix = ".0000000-00:00"
)

// ShipmentTime is a timestamp in the shipped message wire format.
type ShipmentTime struct {
	time.Time
}

// NewShipmentTime wraps t.
func NewShipmentTime(t time.Time) ShipmentTime {
	return ShipmentTime{Time: t}
}

// String returns the wire form, e.g. 2021-03-05T10:15:30.0000000-00:00.
func (t ShipmentTime) String() string {
	return t.UTC().Format(shipmentTimeLayout) + shipmentTimeSuffix
}

// MarshalJSON implements json.Marshaler.
func (t ShipmentTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON accepts the wire form as well as RFC 3339.
func (t *ShipmentTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("shipment time must be a JSON string: %w", err)
	}

	if prefix, ok := strings.CutSuffix(s, shipmentTimeSuffix); ok {
		parsed, err := time.ParseInLocation(shipmentTimeLayout, prefix, time.UTC)
		if err != nil {
			return fmt.Errorf("parsing shipment time %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parsing shipment time %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}
