package pkg

import (
	"fmt"
	"time"

	"github.com/fatih/structs"
)

// SummaryContent is one aggregated observation: how many for one instant.
type SummaryContent struct {
	Date time.Time `structs:"-"`
	Sum  uint32    `structs:"sum"`
}

// Summary is the dashboard's running series of observations together
// with the moment it was last refreshed. The series order is the
// producer's; this package never sorts, deduplicates or fills gaps.
type Summary struct {
	Data       []SummaryContent
	LastUpdate time.Time
}

func (c SummaryContent) Encode() (map[string]interface{}, error) {
	if c.Date.IsZero() {
		return nil, fmt.Errorf("summary content date is not set")
	}
	m := structs.Map(c)
	m[fieldDate] = c.Date.UTC().Format(time.RFC3339)
	return m, nil
}

func (s Summary) Encode() (map[string]interface{}, error) {
	if s.LastUpdate.IsZero() {
		return nil, fmt.Errorf("summary last update is not set")
	}
	data := make([]interface{}, 0, len(s.Data))
	for i, content := range s.Data {
		encoded, err := content.Encode()
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}
		data = append(data, encoded)
	}
	return map[string]interface{}{
		fieldData:       data,
		fieldLastUpdate: formatDateTime(s.LastUpdate),
	}, nil
}

func DecodeSummaryContent(v interface{}) (SummaryContent, error) {
	obj, err := asObject("summary content", v)
	if err != nil {
		return SummaryContent{}, err
	}
	date, err := instantField(obj, fieldDate)
	if err != nil {
		return SummaryContent{}, err
	}
	sum, err := countField(obj, fieldSum)
	if err != nil {
		return SummaryContent{}, err
	}
	logUnknownFields("summary_content", obj, fieldDate, fieldSum)
	return SummaryContent{Date: date, Sum: sum}, nil
}

func DecodeSummary(v interface{}) (Summary, error) {
	obj, err := asObject("summary", v)
	if err != nil {
		return Summary{}, err
	}
	seq, err := arrayField(obj, fieldData)
	if err != nil {
		return Summary{}, err
	}
	data := make([]SummaryContent, 0, len(seq))
	for i, element := range seq {
		content, err := DecodeSummaryContent(element)
		if err != nil {
			return Summary{}, fmt.Errorf("data[%d]: %w", i, err)
		}
		data = append(data, content)
	}
	lastUpdate, err := dateTimeField(obj, fieldLastUpdate)
	if err != nil {
		return Summary{}, err
	}
	logUnknownFields("summary", obj, fieldData, fieldLastUpdate)
	return Summary{Data: data, LastUpdate: lastUpdate}, nil
}
