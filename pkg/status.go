package pkg

import (
	"fmt"
	"time"

	"github.com/fatih/structs"
)

// Attribute names one of the dashboard's reporting categories. The set
// is closed; values outside it are rejected on decode.
type Attribute string

const (
	AttributeAccommodations Attribute = "accommodations"
	// Historical misspelling on the wire; part of the contract.
	AttributeCoodinating      Attribute = "coodinating"
	AttributeDead             Attribute = "dead"
	AttributeHome             Attribute = "home"
	AttributeHospitalizations Attribute = "hospitalizations"
	AttributeInspections      Attribute = "inspections"
	AttributeLeave            Attribute = "leave"
	AttributePatients         Attribute = "patients"
	AttributeSeverelyPatients Attribute = "severely_patients"
	AttributeOther            Attribute = "other"
)

var attributes = []string{
	string(AttributeAccommodations),
	string(AttributeCoodinating),
	string(AttributeDead),
	string(AttributeHome),
	string(AttributeHospitalizations),
	string(AttributeInspections),
	string(AttributeLeave),
	string(AttributePatients),
	string(AttributeSeverelyPatients),
	string(AttributeOther),
}

func ParseAttribute(raw string) (Attribute, error) {
	if !isStringInList(attributes, raw) {
		return "", fmt.Errorf("unknown attribute %q", raw)
	}
	return Attribute(raw), nil
}

// DetailedStatus is a breakdown entry under a Status.
type DetailedStatus struct {
	Attr  Attribute `structs:"-"`
	Value uint32    `structs:"value"`
}

// Status is one reported figure for an attribute, optionally broken down
// into children and stamped with its own refresh moment.
type Status struct {
	Attr       Attribute
	Value      uint32
	Children   []DetailedStatus
	LastUpdate time.Time
}

func (d DetailedStatus) Encode() (map[string]interface{}, error) {
	if d.Attr == "" {
		return nil, fmt.Errorf("detailed status attribute is not set")
	}
	m := structs.Map(d)
	m[fieldAttr] = string(d.Attr)
	return m, nil
}

func (s Status) Encode() (map[string]interface{}, error) {
	if s.Attr == "" {
		return nil, fmt.Errorf("status attribute is not set")
	}
	m := map[string]interface{}{
		fieldAttr:  string(s.Attr),
		fieldValue: s.Value,
	}
	if len(s.Children) > 0 {
		children := make([]interface{}, 0, len(s.Children))
		for i, child := range s.Children {
			encoded, err := child.Encode()
			if err != nil {
				return nil, fmt.Errorf("children[%d]: %w", i, err)
			}
			children = append(children, encoded)
		}
		m[fieldChildren] = children
	}
	if !s.LastUpdate.IsZero() {
		m[fieldLastUpdate] = formatDateTime(s.LastUpdate)
	}
	return m, nil
}

func attributeField(obj map[string]interface{}, field string) (Attribute, error) {
	raw, err := stringField(obj, field)
	if err != nil {
		return "", err
	}
	attr, err := ParseAttribute(raw)
	if err != nil {
		return "", &UnknownAttributeError{Field: field, Raw: raw}
	}
	return attr, nil
}

func DecodeDetailedStatus(v interface{}) (DetailedStatus, error) {
	obj, err := asObject("detailed status", v)
	if err != nil {
		return DetailedStatus{}, err
	}
	attr, err := attributeField(obj, fieldAttr)
	if err != nil {
		return DetailedStatus{}, err
	}
	value, err := countField(obj, fieldValue)
	if err != nil {
		return DetailedStatus{}, err
	}
	logUnknownFields("detailed_status", obj, fieldAttr, fieldValue)
	return DetailedStatus{Attr: attr, Value: value}, nil
}

func DecodeStatus(v interface{}) (Status, error) {
	obj, err := asObject("status", v)
	if err != nil {
		return Status{}, err
	}
	attr, err := attributeField(obj, fieldAttr)
	if err != nil {
		return Status{}, err
	}
	value, err := countField(obj, fieldValue)
	if err != nil {
		return Status{}, err
	}
	var children []DetailedStatus
	seq, present, err := optionalArrayField(obj, fieldChildren)
	if err != nil {
		return Status{}, err
	}
	if present {
		children = make([]DetailedStatus, 0, len(seq))
		for i, element := range seq {
			child, err := DecodeDetailedStatus(element)
			if err != nil {
				return Status{}, fmt.Errorf("children[%d]: %w", i, err)
			}
			children = append(children, child)
		}
	}
	lastUpdate, err := optionalDateTimeField(obj, fieldLastUpdate)
	if err != nil {
		return Status{}, err
	}
	logUnknownFields("status", obj, fieldAttr, fieldValue, fieldChildren, fieldLastUpdate)
	return Status{Attr: attr, Value: value, Children: children, LastUpdate: lastUpdate}, nil
}
