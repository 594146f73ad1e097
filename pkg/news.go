package pkg

import (
	"fmt"

	"github.com/fatih/structs"
)

// NewsItem is one dated announcement shown on the dashboard.
type NewsItem struct {
	Date DateStamp `structs:"-"`
	Text string    `structs:"text"`
	URL  string    `structs:"url"`
}

// News is the ordered list of announcements.
type News struct {
	Items []NewsItem
}

func (n NewsItem) Encode() (map[string]interface{}, error) {
	if n.Date.IsZero() {
		return nil, fmt.Errorf("news item date is not set")
	}
	m := structs.Map(n)
	m[fieldDate] = n.Date.String()
	return m, nil
}

func (n News) Encode() (map[string]interface{}, error) {
	items := make([]interface{}, 0, len(n.Items))
	for i, item := range n.Items {
		encoded, err := item.Encode()
		if err != nil {
			return nil, fmt.Errorf("news item %d: %w", i, err)
		}
		items = append(items, encoded)
	}
	return map[string]interface{}{fieldNewsItems: items}, nil
}

func DecodeNewsItem(v interface{}) (NewsItem, error) {
	obj, err := asObject("news item", v)
	if err != nil {
		return NewsItem{}, err
	}
	date, err := dateStampField(obj, fieldDate)
	if err != nil {
		return NewsItem{}, err
	}
	text, err := stringField(obj, fieldText)
	if err != nil {
		return NewsItem{}, err
	}
	url, err := stringField(obj, fieldURL)
	if err != nil {
		return NewsItem{}, err
	}
	logUnknownFields("news_item", obj, fieldDate, fieldText, fieldURL)
	return NewsItem{Date: date, Text: text, URL: url}, nil
}

func DecodeNews(v interface{}) (News, error) {
	obj, err := asObject("news", v)
	if err != nil {
		return News{}, err
	}
	seq, err := arrayField(obj, fieldNewsItems)
	if err != nil {
		return News{}, err
	}
	items := make([]NewsItem, 0, len(seq))
	for i, element := range seq {
		item, err := DecodeNewsItem(element)
		if err != nil {
			return News{}, fmt.Errorf("news item %d: %w", i, err)
		}
		items = append(items, item)
	}
	logUnknownFields("news", obj, fieldNewsItems)
	return News{Items: items}, nil
}
