package jet_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func TestShipmentTime_Marshal(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc whole second",
			in:   time.Date(2021, 3, 5, 10, 15, 30, 0, time.UTC),
			want: `"2021-03-05T10:15:30.0000000-00:00"`,
		},
		{
			name: "sub-second precision is dropped",
			in:   time.Date(2021, 3, 5, 10, 15, 30, 987654321, time.UTC),
			want: `"2021-03-05T10:15:30.0000000-00:00"`,
		},
		{
			name: "offset is normalized to utc",
			in:   time.Date(2021, 3, 5, 5, 15, 30, 0, est),
			want: `"2021-03-05T10:15:30.0000000-00:00"`,
		},
		{
			name: "date rollover when normalizing",
			in:   time.Date(2021, 12, 31, 22, 0, 0, 0, est),
			want: `"2022-01-01T03:00:00.0000000-00:00"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := json.Marshal(jet.NewShipmentTime(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestShipmentTime_Unmarshal(t *testing.T) {
	t.Parallel()

	want := time.Date(2021, 3, 5, 10, 15, 30, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "wire format", in: `"2021-03-05T10:15:30.0000000-00:00"`},
		{name: "rfc3339 utc", in: `"2021-03-05T10:15:30Z"`},
		{name: "rfc3339 with offset", in: `"2021-03-05T05:15:30-05:00"`},
		{name: "not a string", in: `1614939330`, wantErr: true},
		{name: "garbage", in: `"yesterday"`, wantErr: true},
		{name: "bad wire prefix", in: `"2021-13-05T10:15:30.0000000-00:00"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got jet.ShipmentTime
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestShipmentTime_RoundTrip(t *testing.T) {
	t.Parallel()

	in := jet.NewShipmentTime(time.Date(2021, 3, 5, 10, 15, 30, 0, time.UTC))

	out, err := json.Marshal(in)
	require.NoError(t, err)

	var back jet.ShipmentTime
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, in.String(), back.String())
	assert.Equal(t, "2021-03-05T10:15:30.0000000-00:00", back.String())
}
