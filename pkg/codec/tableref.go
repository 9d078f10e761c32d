package codec

// TableRef is an offset/size pair pointing at a sub-table that follows a
// variable-size body.
//
//	At      position of the u32 offset field
//	Offset  distance from At+4 to the table
//	Size    table size in bytes
type TableRef struct {
	At     int
	Offset uint32
	Size   uint32
}

// Start returns the position of the table's first byte.
func (t TableRef) Start() int {
	return t.At + 4 + int(t.Offset)
}

// End returns the position just past the table.
func (t TableRef) End() int {
	return t.Start() + int(t.Size)
}
