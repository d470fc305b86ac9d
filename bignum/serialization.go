package bignum

import (
	"github.com/globalsign/mgo/bson"
)

// Convert to the canonical decimal string. Decimal128 tops out at 34
// digits, so an unbounded Num travels as a string.
func (n *Num) GetBSON() (interface{}, error) {
	return n.String(), nil
}

// Parse from the canonical decimal string.
func (n *Num) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	return n.SetString(s)
}
