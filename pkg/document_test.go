package pkg

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func testDocument(t *testing.T) Document {
	t.Helper()
	return Document{
		News: &News{Items: []NewsItem{
			{Date: mustDateStamp(t, "2020-03-25"), Text: "The dashboard is now live", URL: "https://example.org/news/1"},
		}},
		Summary: &Summary{
			Data: []SummaryContent{
				{Date: time.Date(2020, time.March, 25, 9, 40, 0, 0, time.UTC), Sum: 10},
			},
			LastUpdate: time.Date(2020, time.March, 25, 21, 25, 0, 0, time.UTC),
		},
		Status: []Status{
			{Attr: AttributePatients, Value: 3072, Children: []DetailedStatus{{Attr: AttributeLeave, Value: 2048}}},
			{Attr: AttributeInspections, Value: 500},
		},
		LastUpdate: time.Date(2020, time.March, 25, 21, 40, 0, 0, time.UTC),
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := testDocument(t)

	encoded, err := doc.Encode()
	assert.Nil(t, err)
	decoded, err := DecodeDocument(encoded)

	assert.Nil(t, err)
	assert.Empty(t, cmp.Diff(doc, decoded, cmpopts.EquateEmpty()))
}

func TestDocumentRoundTripThroughJSON(t *testing.T) {
	doc := testDocument(t)

	encoded, err := doc.Encode()
	assert.Nil(t, err)
	payload, err := json.Marshal(encoded)
	assert.Nil(t, err)

	decoded, err := DecodeDocument(decodeTree(t, string(payload)))

	assert.Nil(t, err)
	assert.Empty(t, cmp.Diff(doc, decoded, cmpopts.EquateEmpty()))
}

func TestDocumentEncodeOmitsAbsentSections(t *testing.T) {
	doc := Document{LastUpdate: time.Date(2020, time.March, 25, 21, 40, 0, 0, time.UTC)}

	encoded, err := doc.Encode()

	assert.Nil(t, err)
	assert.Len(t, encoded, 1)
	assert.EqualValues(t, "2020/03/25 21:40", encoded["last_update"])
}

func TestDecodeDocumentMissingLastUpdate(t *testing.T) {
	_, err := DecodeDocument(decodeTree(t, `{"status":[{"attr":"patients","value":1}]}`))

	var missing *MissingFieldError
	assert.True(t, errors.As(err, &missing))
	assert.EqualValues(t, "last_update", missing.Field)
}

func TestDecodeDocumentNamesFailingSection(t *testing.T) {
	_, err := DecodeDocument(decodeTree(t, `{
		"summary": {"data":[{"date":"bad","sum":1}], "last_update":"2020/03/25 21:25"},
		"last_update": "2020/03/25 21:40"
	}`))

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "summary")
	var invalid *InvalidDateError
	assert.True(t, errors.As(err, &invalid))
}

func TestDecodeDocumentNotAnObject(t *testing.T) {
	_, err := DecodeDocument(decodeTree(t, `[1,2,3]`))

	var mismatch *TypeMismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.EqualValues(t, "object", mismatch.Expected)
	assert.EqualValues(t, "array", mismatch.Actual)
}
