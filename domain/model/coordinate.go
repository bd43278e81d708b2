package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/schema"
)

// Places kept on latitude and longitude.
const Precision = 8

var (
	ErrInvalidCoordinateValue = errors.New("invalid coordinate value")
	ErrMissingField           = errors.New("missing field")
	ErrInvalidIdentity        = errors.New("invalid identity")
	ErrInvalidField           = errors.New("invalid field")
	ErrComparison             = errors.New("cannot compare coordinates")
)

// Coordinate is the location attached to an agenda item.
//
// Lat and Lng are quantized once, in New, and are either both set or both nil.
// ID is only set for rows loaded from the database.
type Coordinate struct {
	ID            *int64           `gorm:"column:id;primaryKey"`
	Valid         bool             `gorm:"-"`
	Lat           *decimal.Decimal `gorm:"column:lat;type:decimal(11,8)"`
	Lng           *decimal.Decimal `gorm:"column:lng;type:decimal(11,8)"`
	AddressString *string          `gorm:"column:address_string;type:varchar(255)"`
	AgendaItemID  OwnerRef         `gorm:"column:agendaitem_id"`
}

var _ schema.Tabler = Coordinate{}

func (Coordinate) TableName() string {
	return "coords"
}

// Fields holds the raw column values for New.
// Lat and Lng may be any decimal-convertible value; AgendaItemID is wrapped in
// an OwnerRef as is.
type Fields struct {
	Lat           any
	Lng           any
	AddressString *string
	AgendaItemID  any
}

// New builds a coordinate. A nil id or a zero id means the coordinate has not
// been saved yet. A nil f leaves every field unset.
func New(id *int64, f *Fields) (*Coordinate, error) {
	c := &Coordinate{ID: id, Valid: id != nil && *id != 0}

	if f == nil {
		return c, nil
	}

	lat, err := quantize(f.Lat)
	if err != nil {
		return nil, fmt.Errorf("new coordinate: lat: %w", err)
	}
	lng, err := quantize(f.Lng)
	if err != nil {
		return nil, fmt.Errorf("new coordinate: lng: %w", err)
	}

	c.Lat = &lat
	c.Lng = &lng
	c.AddressString = f.AddressString
	c.AgendaItemID = NewOwnerRef(f.AgendaItemID)

	return c, nil
}

// FromRecord builds a coordinate from a row as gorm returns it when scanning
// into map[string]interface{}. The row must have an "id" key, which may be nil.
func FromRecord(rec map[string]any) (*Coordinate, error) {
	rawID, ok := rec["id"]
	if !ok {
		return nil, fmt.Errorf("coordinate from record: %w: id", ErrMissingField)
	}

	id, err := toIdentity(rawID)
	if err != nil {
		return nil, fmt.Errorf("coordinate from record: %w", err)
	}

	address, err := toAddress(rec["address_string"])
	if err != nil {
		return nil, fmt.Errorf("coordinate from record: %w", err)
	}

	return New(id, &Fields{
		Lat:           rec["lat"],
		Lng:           rec["lng"],
		AddressString: address,
		AgendaItemID:  rec["agendaitem_id"],
	})
}

// Pair is the quantized (lat, lng) key used for equality.
type Pair struct {
	Lat decimal.Decimal
	Lng decimal.Decimal
}

// Pair returns the coordinate pair, or false for an empty or nil coordinate.
func (c *Coordinate) Pair() (Pair, bool) {
	if c == nil || c.Lat == nil || c.Lng == nil {
		return Pair{}, false
	}
	return Pair{Lat: *c.Lat, Lng: *c.Lng}, true
}

// Equal compares the coordinate pairs only. Two empty coordinates are equal,
// and nil counts as empty.
func (c *Coordinate) Equal(other *Coordinate) bool {
	p, ok := c.Pair()
	q, otherOK := other.Pair()
	if !ok || !otherOK {
		return ok == otherOK
	}
	return p.Lat.Equal(q.Lat) && p.Lng.Equal(q.Lng)
}

// Compare orders by latitude alone; longitude is not a tiebreaker. The order
// is consistent, not geographic.
func (c *Coordinate) Compare(other *Coordinate) (int, error) {
	if c == nil || other == nil || c.Lat == nil || other.Lat == nil {
		return 0, fmt.Errorf("%w: latitude is not set", ErrComparison)
	}
	return c.Lat.Cmp(*other.Lat), nil
}

func (c *Coordinate) Less(other *Coordinate) (bool, error) {
	n, err := c.Compare(other)
	if err != nil {
		return false, err
	}
	return n < 0, nil
}

// SortByLatitude stable-sorts coords by Compare. The slice is left untouched
// if any element has no latitude.
func SortByLatitude(coords []*Coordinate) error {
	for i, c := range coords {
		if c == nil || c.Lat == nil {
			return fmt.Errorf("sort coordinates: index %d: %w: latitude is not set", i, ErrComparison)
		}
	}

	sort.SliceStable(coords, func(i, j int) bool {
		return coords[i].Lat.LessThan(*coords[j].Lat)
	})

	return nil
}

// Hash covers the address as well as the pair, so it is not consistent with
// Equal: two Equal coordinates with different addresses hash differently.
func (c *Coordinate) Hash() uint64 {
	if c.AddressString == nil || c.Lat == nil || c.Lng == nil {
		return xxhash.Sum64String(c.String())
	}

	d := xxhash.New()
	_, _ = d.WriteString(*c.AddressString)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(c.Lat.String())
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(c.Lng.String())
	return d.Sum64()
}

func (c *Coordinate) String() string {
	p, ok := c.Pair()
	if !ok {
		return "<Coordinate (empty)>"
	}

	address := "none"
	if c.AddressString != nil {
		address = *c.AddressString
	}

	return fmt.Sprintf("<Coordinate %s %s (%s)>", p.Lat.StringFixedBank(5), p.Lng.StringFixedBank(5), address)
}

// ValidateForSave reports whether every column needed for an insert is set,
// and records the result in Valid.
func (c *Coordinate) ValidateForSave() bool {
	c.Valid = c.Lat != nil && c.Lng != nil && c.AddressString != nil && c.AgendaItemID.IsSet()
	return c.Valid
}

// DistanceFrom returns the great-circle distance from c to (lat, lng) in the
// given unit. It returns false for an empty coordinate or an unknown unit.
// Out of range degrees are not rejected.
func (c *Coordinate) DistanceFrom(lat, lng float64, unit Unit) (float64, bool) {
	p, ok := c.Pair()
	if !ok {
		return 0, false
	}

	km := Haversine(p.Lat.InexactFloat64(), p.Lng.InexactFloat64(), lat, lng)

	switch unit {
	case Imperial:
		return km * KmToMiles, true
	case Metric:
		return km, true
	default:
		return 0, false
	}
}

func quantize(v any) (decimal.Decimal, error) {
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.RoundBank(Precision), nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: nil", ErrInvalidCoordinateValue)
		}
		return *x, nil
	case string:
		return parseDecimal(x)
	case []byte:
		return parseDecimal(string(x))
	case json.Number:
		return parseDecimal(x.String())
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case nil:
		return decimal.Decimal{}, fmt.Errorf("%w: nil", ErrInvalidCoordinateValue)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidCoordinateValue, v)
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidCoordinateValue, s)
	}
	return d, nil
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidCoordinateValue, f)
	}
	return decimal.NewFromFloat(f), nil
}

func toIdentity(v any) (*int64, error) {
	var id int64

	switch x := v.(type) {
	case nil:
		return nil, nil
	case int:
		id = int64(x)
	case int8:
		id = int64(x)
	case int16:
		id = int64(x)
	case int32:
		id = int64(x)
	case int64:
		id = x
	case uint:
		return fromUintIdentity(uint64(x))
	case uint8:
		id = int64(x)
	case uint16:
		id = int64(x)
	case uint32:
		id = int64(x)
	case uint64:
		return fromUintIdentity(x)
	case float64:
		// JSON-decoded rows carry numbers as float64
		if x != math.Trunc(x) || x < -(1<<63) || x >= 1<<63 {
			return nil, fmt.Errorf("%w: %v is not an integer", ErrInvalidIdentity, x)
		}
		id = int64(x)
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentity, x.String())
		}
		id = n
	case *int64:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidIdentity, v)
	}

	return &id, nil
}

func fromUintIdentity(u uint64) (*int64, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrInvalidIdentity, u)
	}
	id := int64(u)
	return &id, nil
}

func toAddress(v any) (*string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &x, nil
	case *string:
		return x, nil
	case []byte:
		s := string(x)
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: address_string has type %T", ErrInvalidField, v)
	}
}
