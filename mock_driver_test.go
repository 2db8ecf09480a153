package screen

import (
	"github.com/stretchr/testify/mock"
	"golang.org/x/image/font"
)

// mockDriver is a Driver backed by testify's mock.Mock.
type mockDriver struct {
	mock.Mock
}

func (m *mockDriver) Rotations() map[int]byte {
	args := m.Called()
	return args.Get(0).(map[int]byte)
}

func (m *mockDriver) SetRotation(code byte) error {
	return m.Called(code).Error(0)
}

func (m *mockDriver) SetSize(w, h int) {
	m.Called(w, h)
}

func (m *mockDriver) WriteCommand(cmd byte, data ...byte) error {
	return m.Called(cmd, data).Error(0)
}

func (m *mockDriver) DrawPixel(x, y int, c uint16) error {
	return m.Called(x, y, c).Error(0)
}

func (m *mockDriver) DrawLine(x1, y1, x2, y2 int, c uint16) error {
	return m.Called(x1, y1, x2, y2, c).Error(0)
}

func (m *mockDriver) DrawHLine(x, y, w int, c uint16) error {
	return m.Called(x, y, w, c).Error(0)
}

func (m *mockDriver) DrawVLine(x, y, h int, c uint16) error {
	return m.Called(x, y, h, c).Error(0)
}

func (m *mockDriver) DrawRect(x, y, w, h int, c uint16) error {
	return m.Called(x, y, w, h, c).Error(0)
}

func (m *mockDriver) FillRect(x, y, w, h int, c uint16) error {
	return m.Called(x, y, w, h, c).Error(0)
}

func (m *mockDriver) DrawCircle(x, y, r int, c uint16) error {
	return m.Called(x, y, r, c).Error(0)
}

func (m *mockDriver) FillCircle(x, y, r int, c uint16) error {
	return m.Called(x, y, r, c).Error(0)
}

func (m *mockDriver) DrawEllipse(x, y, rx, ry int, c uint16) error {
	return m.Called(x, y, rx, ry, c).Error(0)
}

func (m *mockDriver) FillEllipse(x, y, rx, ry int, c uint16) error {
	return m.Called(x, y, rx, ry, c).Error(0)
}

func (m *mockDriver) DrawPolygon(sides, x, y, r int, c uint16, rotate float64) error {
	return m.Called(sides, x, y, r, c, rotate).Error(0)
}

func (m *mockDriver) FillPolygon(sides, x, y, r int, c uint16, rotate float64) error {
	return m.Called(sides, x, y, r, c, rotate).Error(0)
}

func (m *mockDriver) DrawText8x8(x, y int, text string, fg, bg uint16, rotate int) error {
	return m.Called(x, y, text, fg, bg, rotate).Error(0)
}

func (m *mockDriver) DrawText(x, y int, text string, face font.Face, fg, bg uint16, landscape bool, spacing int) error {
	return m.Called(x, y, text, face, fg, bg, landscape, spacing).Error(0)
}

func (m *mockDriver) DrawImage(path string, x, y, w, h int) error {
	return m.Called(path, x, y, w, h).Error(0)
}

func (m *mockDriver) LoadSprite(path string, w, h int) ([]byte, error) {
	args := m.Called(path, w, h)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockDriver) DrawSprite(buf []byte, x, y, w, h int) error {
	return m.Called(buf, x, y, w, h).Error(0)
}

func (m *mockDriver) Clear(c uint16) error {
	return m.Called(c).Error(0)
}

func (m *mockDriver) DisplayOn() error {
	return m.Called().Error(0)
}

func (m *mockDriver) DisplayOff() error {
	return m.Called().Error(0)
}

func (m *mockDriver) Sleep(enable bool) error {
	return m.Called(enable).Error(0)
}

func (m *mockDriver) SetScrollArea(top, bottom int) error {
	return m.Called(top, bottom).Error(0)
}

func (m *mockDriver) Scroll(offset int) error {
	return m.Called(offset).Error(0)
}

func (m *mockDriver) Refresh() error {
	return m.Called().Error(0)
}

// mockOperator is a mockDriver that also implements Operator.
type mockOperator struct {
	mockDriver
}

func (m *mockOperator) Operations() []string {
	return m.Called().Get(0).([]string)
}

func (m *mockOperator) Operation(name string, args ...any) (any, error) {
	ret := m.Called(name, args)
	return ret.Get(0), ret.Error(1)
}

var (
	_ Driver   = (*mockDriver)(nil)
	_ Operator = (*mockOperator)(nil)
)
