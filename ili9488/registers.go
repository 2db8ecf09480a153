package ili9488

// Registers (from the ILI9488 datasheet).
const (
	NOP      = 0x00
	SWRESET  = 0x01
	RDDID    = 0x04
	RDDST    = 0x09
	SLPIN    = 0x10 // Sleep In
	SLPOUT   = 0x11 // Sleep Out
	PTLON    = 0x12
	NORON    = 0x13
	INVOFF   = 0x20 // Display Inversion Off
	INVON    = 0x21 // Display Inversion On
	DISPOFF  = 0x28 // Display Off
	DISPON   = 0x29 // Display On
	CASET    = 0x2A // Column Address Set
	PASET    = 0x2B // Page Address Set
	RAMWR    = 0x2C // Memory Write
	RAMRD    = 0x2E
	VSCRDEF  = 0x33 // Vertical Scrolling Definition
	MADCTL   = 0x36 // Memory Access Control
	VSCRSADD = 0x37 // Vertical Scrolling Start Address
	IDMOFF   = 0x38 // Idle Mode Off
	IDMON    = 0x39 // Idle Mode On
	PIXFMT   = 0x3A // Interface Pixel Format
	WRDISBV  = 0x51 // Write Display Brightness
	IFMODE   = 0xB0 // Interface Mode Control
	FRMCTR1  = 0xB1 // Frame Rate Control
	INVCTR   = 0xB4 // Display Inversion Control
	DFUNCTR  = 0xB6 // Display Function Control
	ETMOD    = 0xB7 // Entry Mode Set
	PWCTR1   = 0xC0 // Power Control 1
	PWCTR2   = 0xC1 // Power Control 2
	VMCTR1   = 0xC5 // VCOM Control
	GMCTRP1  = 0xE0 // Positive Gamma Control
	GMCTRN1  = 0xE1 // Negative Gamma Control
	ADJCTL3  = 0xF7 // Adjust Control 3
)

// Memory Access Control (MADCTL) bit fields.
const (
	_                 byte = 1 << iota // D0: reserved
	_                                  // D1: reserved
	madctlMH                           // D2: horizontal refresh order
	madctlBGR                          // D3: RGB-BGR order
	madctlML                           // D4: vertical refresh order
	madctlMV                           // D5: row/column exchange
	madctlMX                           // D6: column address order
	madctlMY                           // D7: row address order
)

// rotations maps the rotation in degrees clockwise to the MADCTL value.
var rotations = map[int]byte{
	0:   madctlMV | madctlBGR,
	90:  madctlMX | madctlBGR,
	180: madctlMX | madctlMY | madctlMV | madctlBGR,
	270: madctlMY | madctlBGR,
}
