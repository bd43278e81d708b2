package model

import (
	"database/sql/driver"
	"fmt"
)

// OwnerRef is the agenda item key a coordinate belongs to. The value is opaque:
// it is stored and written back as given, never looked up.
type OwnerRef struct {
	v any
}

func NewOwnerRef(v any) OwnerRef {
	switch x := v.(type) {
	case OwnerRef:
		return x
	case *OwnerRef:
		if x == nil {
			return OwnerRef{}
		}
		return *x
	}
	return OwnerRef{v: v}
}

func (r OwnerRef) IsSet() bool {
	return r.v != nil
}

// Any returns the raw value, or nil when unset.
func (r OwnerRef) Any() any {
	return r.v
}

func (r OwnerRef) String() string {
	if r.v == nil {
		return "none"
	}
	return fmt.Sprint(r.v)
}

func (OwnerRef) GormDataType() string {
	return "bigint"
}

func (r OwnerRef) Value() (driver.Value, error) {
	v, err := driver.DefaultParameterConverter.ConvertValue(r.v)
	if err != nil {
		return nil, fmt.Errorf("agendaitem_id: %w", err)
	}
	return v, nil
}

func (r *OwnerRef) Scan(src any) error {
	// drivers may reuse the buffer behind []byte
	if b, ok := src.([]byte); ok {
		src = append([]byte(nil), b...)
	}
	r.v = src
	return nil
}
