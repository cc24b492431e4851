package control

// Field is a bit field within the flags byte.
type Field struct {
	Mask  byte
	Shift uint
	Abbr  string
}

// Get extracts the field value from b.
func (f Field) Get(b byte) uint8 {
	return (b & f.Mask) >> f.Shift
}

// Set returns b with the field replaced by v. Bits of v that do not fit in
// the field are dropped.
func (f Field) Set(b byte, v uint8) byte {
	return b&^f.Mask | (v<<f.Shift)&f.Mask
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint8 {
	return f.Mask >> f.Shift
}

var (
	Fee       = Field{0b_1000_0000, 7, "f"}
	Resolvers = Field{0b_0111_1000, 3, "r"}
	Points    = Field{0b_0000_0111, 0, "p"}
)
