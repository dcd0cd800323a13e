package mouse

// ReportSize is the size of the report sent to the host.
const ReportSize = 4

const (
	ButtonLeft   = 1 << 0
	ButtonRight  = 1 << 1
	ButtonMiddle = 1 << 2

	buttonBits = ButtonLeft | ButtonRight | ButtonMiddle
)

// ReportDescriptor describes a 3 button relative mouse with a wheel, the
// layout of a Logitech mouse. The data described consists of 4 bytes:
//
//	.  .  .  .  . B2 B1 B0 .... one byte with mouse button states
//	X7 X6 X5 X4 X3 X2 X1 X0 .... 8 bit signed relative coordinate x
//	Y7 Y6 Y5 Y4 Y3 Y2 Y1 Y0 .... 8 bit signed relative coordinate y
//	W7 W6 W5 W4 W3 W2 W1 W0 .... 8 bit signed relative coordinate wheel
var ReportDescriptor = [52]byte{
	0x05, 0x01, // USAGE_PAGE (Generic Desktop)
	0x09, 0x02, // USAGE (Mouse)
	0xa1, 0x01, // COLLECTION (Application)
	0x09, 0x01, //   USAGE (Pointer)
	0xa1, 0x00, //   COLLECTION (Physical)
	0x05, 0x09, //     USAGE_PAGE (Button)
	0x19, 0x01, //     USAGE_MINIMUM
	0x29, 0x03, //     USAGE_MAXIMUM
	0x15, 0x00, //     LOGICAL_MINIMUM (0)
	0x25, 0x01, //     LOGICAL_MAXIMUM (1)
	0x95, 0x03, //     REPORT_COUNT (3)
	0x75, 0x01, //     REPORT_SIZE (1)
	0x81, 0x02, //     INPUT (Data,Var,Abs)
	0x95, 0x01, //     REPORT_COUNT (1)
	0x75, 0x05, //     REPORT_SIZE (5)
	0x81, 0x03, //     INPUT (Const,Var,Abs)
	0x05, 0x01, //     USAGE_PAGE (Generic Desktop)
	0x09, 0x30, //     USAGE (X)
	0x09, 0x31, //     USAGE (Y)
	0x09, 0x38, //     USAGE (Wheel)
	0x15, 0x81, //     LOGICAL_MINIMUM (-127)
	0x25, 0x7f, //     LOGICAL_MAXIMUM (127)
	0x75, 0x08, //     REPORT_SIZE (8)
	0x95, 0x03, //     REPORT_COUNT (3)
	0x81, 0x06, //     INPUT (Data,Var,Rel)
	0xc0,       //   END_COLLECTION
	0xc0,       // END_COLLECTION
}

// Report is one relative mouse report.
type Report struct {
	Buttons uint8
	DX      int8
	DY      int8
	Wheel   int8
}

// Bytes encodes r in the wire layout of ReportDescriptor.
func (r Report) Bytes() [ReportSize]byte {
	return [ReportSize]byte{
		r.Buttons & buttonBits,
		byte(r.DX),
		byte(r.DY),
		byte(r.Wheel),
	}
}

// ParseReport decodes a report in the wire layout. Reserved button bits are
// dropped.
func ParseReport(b [ReportSize]byte) Report {
	return Report{
		Buttons: b[0] & buttonBits,
		DX:      int8(b[1]),
		DY:      int8(b[2]),
		Wheel:   int8(b[3]),
	}
}

// IsZero reports whether r releases everything and moves nothing.
func (r Report) IsZero() bool {
	return r == Report{}
}
