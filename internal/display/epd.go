package display

import (
	"fmt"
	"image"
	"image/draw"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"
)

// Panel resolution in landscape orientation. The controller itself is
// portrait-native, so frames are rotated before transfer.
const (
	panelWidth  = 250
	panelHeight = 122
)

// EPD pushes frames to a Waveshare 2.13" V4 e-paper HAT. Frames are scaled
// down to the panel resolution, rotated to portrait and thresholded to 1-bit.
// The panel sleeps between refreshes.
type EPD struct {
	port   spi.PortCloser
	dev    *waveshare2in13v4.Dev
	asleep bool
}

var _ Sink = (*EPD)(nil)

// OpenEPD initializes the host, the SPI bus and the panel.
func OpenEPD() (*EPD, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}
	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("open spi: %w", err)
	}
	opts := waveshare2in13v4.EPD2in13v4
	dev, err := waveshare2in13v4.NewHat(port, &opts)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("open epd hat: %w", err)
	}
	if err := dev.Init(); err != nil {
		port.Close()
		return nil, fmt.Errorf("init epd: %w", err)
	}
	return &EPD{port: port, dev: dev}, nil
}

func (e *EPD) Push(frame *Buffer) error {
	if e.asleep {
		if err := e.dev.Init(); err != nil {
			return fmt.Errorf("wake epd: %w", err)
		}
		e.asleep = false
	}

	landscape := scaleGray(frame.Image(), panelWidth, panelHeight)
	portrait := rotatePortrait(landscape)
	img := image1bit.NewVerticalLSB(e.dev.Bounds())
	draw.Draw(img, img.Bounds(), portrait, image.Point{}, draw.Src)

	if err := e.dev.Draw(e.dev.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("draw epd: %w", err)
	}
	if err := e.dev.Sleep(); err != nil {
		return fmt.Errorf("sleep epd: %w", err)
	}
	e.asleep = true
	return nil
}

func (e *EPD) Close() error {
	err := e.dev.Halt()
	if cerr := e.port.Close(); err == nil {
		err = cerr
	}
	return err
}

// scaleGray resizes src to w by h with nearest-neighbor sampling.
func scaleGray(src *image.Gray, w, h int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, w, h))
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetGray(x, y, src.GrayAt(x*sw/w, y*sh/h))
		}
	}
	return dst
}

// rotatePortrait turns a w by h landscape frame into the panel's native h by
// w portrait orientation.
func rotatePortrait(src *image.Gray) *image.Gray {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.SetGray(x, y, src.GrayAt(y, h-1-x))
		}
	}
	return dst
}
