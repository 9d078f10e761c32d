package tgi

import (
	"fmt"

	"github.com/joshuapare/rcolkit/pkg/codec"
)

// Order is the field order of a key in a binary table. Type and group are
// always four bytes and instance eight, so every order is 16 bytes wide.
type Order uint8

const (
	// OrderTGI stores type, group, instance.
	OrderTGI Order = iota
	// OrderITG stores instance, type, group.
	OrderITG
	// OrderIGT stores instance, group, type.
	OrderIGT
)

func (o Order) String() string {
	switch o {
	case OrderTGI:
		return "TGI"
	case OrderITG:
		return "ITG"
	case OrderIGT:
		return "IGT"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder maps "TGI", "ITG" or "IGT" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "TGI", "tgi", "":
		return OrderTGI, nil
	case "ITG", "itg":
		return OrderITG, nil
	case "IGT", "igt":
		return OrderIGT, nil
	}
	return OrderTGI, fmt.Errorf("tgi: unknown key order %q", s)
}

// Read decodes one key in order o.
func Read(r *codec.Reader, o Order) Key {
	var k Key
	switch o {
	case OrderITG:
		k.Instance = r.U64()
		k.Type = r.U32()
		k.Group = r.U32()
	case OrderIGT:
		k.Instance = r.U64()
		k.Group = r.U32()
		k.Type = r.U32()
	default:
		k.Type = r.U32()
		k.Group = r.U32()
		k.Instance = r.U64()
	}
	return k
}

// Write encodes k in order o.
func Write(w *codec.Writer, k Key, o Order) {
	switch o {
	case OrderITG:
		w.U64(k.Instance)
		w.U32(k.Type)
		w.U32(k.Group)
	case OrderIGT:
		w.U64(k.Instance)
		w.U32(k.Group)
		w.U32(k.Type)
	default:
		w.U32(k.Type)
		w.U32(k.Group)
		w.U64(k.Instance)
	}
}

// Parse implements codec.Element in TGI order.
func (k *Key) Parse(r *codec.Reader) error {
	*k = Read(r, OrderTGI)
	return r.Err()
}

// Unparse implements codec.Element in TGI order.
func (k *Key) Unparse(w *codec.Writer) error {
	Write(w, *k, OrderTGI)
	return nil
}
