package osc

// TypeTag is a single character from an OSC type tag string.
type TypeTag rune

const (
	TypeInt32     TypeTag = 'i'
	TypeFloat32   TypeTag = 'f'
	TypeString    TypeTag = 's'
	TypeBlob      TypeTag = 'b'
	TypeInt64     TypeTag = 'h'
	TypeTimetag   TypeTag = 't'
	TypeFloat64   TypeTag = 'd'
	TypeSymbol    TypeTag = 'S'
	TypeChar      TypeTag = 'c'
	TypeColor     TypeTag = 'r'
	TypeMIDI      TypeTag = 'm'
	TypeTrue      TypeTag = 'T'
	TypeFalse     TypeTag = 'F'
	TypeNil       TypeTag = 'N'
	TypeInfinitum TypeTag = 'I'

	// TypeArrayStart and TypeArrayEnd bracket a run of tags inside the type
	// tag string; they carry no payload bytes of their own.
	TypeArrayStart TypeTag = '['
	TypeArrayEnd   TypeTag = ']'

	TypeInvalid TypeTag = 0
)
