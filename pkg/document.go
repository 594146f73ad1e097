package pkg

import (
	"fmt"
	"time"
)

// Document is the dashboard's whole payload: the optional sections plus
// the refresh moment the site displays.
type Document struct {
	News       *News
	Summary    *Summary
	Status     []Status
	LastUpdate time.Time
}

func (d Document) Encode() (map[string]interface{}, error) {
	if d.LastUpdate.IsZero() {
		return nil, fmt.Errorf("document last update is not set")
	}
	m := map[string]interface{}{
		fieldLastUpdate: formatDateTime(d.LastUpdate),
	}
	if d.News != nil {
		news, err := d.News.Encode()
		if err != nil {
			return nil, fmt.Errorf("news: %w", err)
		}
		m[fieldNews] = news
	}
	if d.Summary != nil {
		summary, err := d.Summary.Encode()
		if err != nil {
			return nil, fmt.Errorf("summary: %w", err)
		}
		m[fieldSummary] = summary
	}
	if len(d.Status) > 0 {
		statuses := make([]interface{}, 0, len(d.Status))
		for i, status := range d.Status {
			encoded, err := status.Encode()
			if err != nil {
				return nil, fmt.Errorf("status[%d]: %w", i, err)
			}
			statuses = append(statuses, encoded)
		}
		m[fieldStatus] = statuses
	}
	return m, nil
}

func DecodeDocument(v interface{}) (Document, error) {
	obj, err := asObject("document", v)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if raw, ok := obj[fieldNews]; ok {
		news, err := DecodeNews(raw)
		if err != nil {
			return Document{}, fmt.Errorf("news: %w", err)
		}
		doc.News = &news
	}
	if raw, ok := obj[fieldSummary]; ok {
		summary, err := DecodeSummary(raw)
		if err != nil {
			return Document{}, fmt.Errorf("summary: %w", err)
		}
		doc.Summary = &summary
	}
	seq, present, err := optionalArrayField(obj, fieldStatus)
	if err != nil {
		return Document{}, err
	}
	if present {
		doc.Status = make([]Status, 0, len(seq))
		for i, element := range seq {
			status, err := DecodeStatus(element)
			if err != nil {
				return Document{}, fmt.Errorf("status[%d]: %w", i, err)
			}
			doc.Status = append(doc.Status, status)
		}
	}
	doc.LastUpdate, err = dateTimeField(obj, fieldLastUpdate)
	if err != nil {
		return Document{}, err
	}
	logUnknownFields("document", obj, fieldNews, fieldSummary, fieldStatus, fieldLastUpdate)
	return doc, nil
}
