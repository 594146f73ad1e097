package pkg

import (
	"fmt"

	"github.com/fatih/structs"
)

// MetricRecord is one daily observation: a calendar date and a
// non-negative count.
type MetricRecord struct {
	Date  DateStamp `structs:"-"`
	Value uint32    `structs:"value"`
}

// Dataset is an ordered series of observations for one metric kind.
// Order is the producer's; gaps in the date sequence pass through
// unchanged.
type Dataset []MetricRecord

func (r MetricRecord) Encode() (map[string]interface{}, error) {
	if r.Date.IsZero() {
		return nil, fmt.Errorf("metric record date is not set")
	}
	m := structs.Map(r)
	m[fieldDate] = r.Date.String()
	return m, nil
}

func (d Dataset) Encode() ([]interface{}, error) {
	records := make([]interface{}, 0, len(d))
	for i, record := range d {
		encoded, err := record.Encode()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, encoded)
	}
	return records, nil
}

func DecodeMetricRecord(v interface{}) (MetricRecord, error) {
	obj, err := asObject("metric record", v)
	if err != nil {
		return MetricRecord{}, err
	}
	date, err := dateStampField(obj, fieldDate)
	if err != nil {
		return MetricRecord{}, err
	}
	value, err := countField(obj, fieldValue)
	if err != nil {
		return MetricRecord{}, err
	}
	logUnknownFields("metric_record", obj, fieldDate, fieldValue)
	return MetricRecord{Date: date, Value: value}, nil
}

func DecodeDataset(v interface{}) (Dataset, error) {
	seq, ok := v.([]interface{})
	if !ok {
		return nil, &TypeMismatchError{Field: "dataset", Expected: "array", Actual: typeName(v)}
	}
	dataset := make(Dataset, 0, len(seq))
	for i, element := range seq {
		record, err := DecodeMetricRecord(element)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		dataset = append(dataset, record)
	}
	return dataset, nil
}

// DecodeDatasetGroup decodes named collections of datasets, for example
// {"confirmed_cases": [...], "pcr_tested_persons": [...]}.
func DecodeDatasetGroup(v interface{}) (map[string]Dataset, error) {
	obj, err := asObject("dataset group", v)
	if err != nil {
		return nil, err
	}
	group := make(map[string]Dataset, len(obj))
	for name, element := range obj {
		dataset, err := DecodeDataset(element)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", name, err)
		}
		group[name] = dataset
	}
	return group, nil
}
