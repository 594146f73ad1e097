package pkg

import (
	"fmt"
	"time"
)

// LastUpdate carries the moment the dashboard data was last refreshed.
type LastUpdate struct {
	DateTime time.Time
}

func (u LastUpdate) Encode() (map[string]interface{}, error) {
	if u.DateTime.IsZero() {
		return nil, fmt.Errorf("last update datetime is not set")
	}
	return map[string]interface{}{
		fieldLastUpdate: formatDateTime(u.DateTime),
	}, nil
}

func DecodeLastUpdate(v interface{}) (LastUpdate, error) {
	obj, err := asObject("last_update", v)
	if err != nil {
		return LastUpdate{}, err
	}
	datetime, err := dateTimeField(obj, fieldLastUpdate)
	if err != nil {
		return LastUpdate{}, err
	}
	logUnknownFields("last_update", obj, fieldLastUpdate)
	return LastUpdate{DateTime: datetime}, nil
}
