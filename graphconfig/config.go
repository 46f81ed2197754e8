// Layout and style settings of the improvement graph.
// Default returns the values used when nothing is configured;
// Load overrides them from a YAML document.
package graphconfig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/okgraph/graphdraw"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrEmptyPlotArea is returned when the paddings leave no room for the curve.
var ErrEmptyPlotArea = errors.New("paddings leave an empty plot area")

// Canvas holds the dimensions of the drawing surface, in pixels.
type Canvas struct {
	Width             float64 `yaml:"width" validate:"gt=0"`
	Height            float64 `yaml:"height" validate:"gt=0"`
	PaddingTop        float64 `yaml:"padding_top" validate:"gte=0"`
	PaddingBottom     float64 `yaml:"padding_bottom" validate:"gte=0"`
	HorizontalPadding float64 `yaml:"horizontal_padding" validate:"gte=0"`
}

// Axis configures the x axis drawn beneath the curve.
type Axis struct {
	TickFontSize  float64 `yaml:"tick_font_size" validate:"gt=0"`
	TickMarginTop float64 `yaml:"tick_margin_top" validate:"gte=0"`
	TickLength    float64 `yaml:"tick_length" validate:"gte=0"`
	Color         string  `yaml:"color" validate:"rgbcolor"`
}

// Style configures the colors and line widths of the curve.
type Style struct {
	NegativeColor   string `yaml:"negative_color" validate:"rgbcolor"`
	PositiveColor   string `yaml:"positive_color" validate:"rgbcolor"`
	BackgroundColor string `yaml:"background_color" validate:"omitempty,rgbcolor"` // empty for a transparent background

	FillOpacity       float64 `yaml:"fill_opacity" validate:"gte=0,lte=1"`
	OutlineOpacity    float64 `yaml:"outline_opacity" validate:"gte=0,lte=1"`
	CenterLineOpacity float64 `yaml:"center_line_opacity" validate:"gte=0,lte=1"`

	OutlineLineWidth float64 `yaml:"outline_line_width" validate:"gt=0"`
	CenterLineWidth  float64 `yaml:"center_line_width" validate:"gt=0"`
}

type Config struct {
	Canvas Canvas `yaml:"canvas"`
	Axis   Axis   `yaml:"axis"`
	Style  Style  `yaml:"style"`
}

// Default returns the standard graph settings.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:             600,
			Height:            300,
			PaddingTop:        20,
			PaddingBottom:     40,
			HorizontalPadding: 30,
		},
		Axis: Axis{
			TickFontSize:  12,
			TickMarginTop: 8,
			TickLength:    4,
			Color:         "#666666",
		},
		Style: Style{
			NegativeColor:     "#ff0000",
			PositiveColor:     "#22B722",
			BackgroundColor:   "#ffffff",
			FillOpacity:       0.2,
			OutlineOpacity:    0.8,
			CenterLineOpacity: 0.5,
			OutlineLineWidth:  2,
			CenterLineWidth:   1,
		},
	}
}

var validate = newValidator()

// newValidator accepts colors with the same rules as
// graphdraw.ParseHexColor, under the "rgbcolor" tag.
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("rgbcolor", func(fl validator.FieldLevel) bool {
		_, err := graphdraw.ParseHexColor(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks every field, and that the plot area is not empty.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid graph config: %w", err)
	}
	if c.PlotRect().Empty() {
		return ErrEmptyPlotArea
	}
	return nil
}

// PlotRect is the area of the canvas where the curve is drawn,
// once paddings are removed.
func (c Config) PlotRect() graphdraw.Rectangle {
	return graphdraw.Rectangle{
		X:      c.Canvas.HorizontalPadding,
		Y:      c.Canvas.PaddingTop,
		Width:  c.Canvas.Width - 2*c.Canvas.HorizontalPadding,
		Height: c.Canvas.Height - c.Canvas.PaddingTop - c.Canvas.PaddingBottom,
	}
}

// Load decodes a YAML document on top of the default settings,
// and validates the result. An empty document yields the defaults.
func Load(r io.Reader) (Config, error) {
	return Default().Overlay(r)
}

// Overlay decodes a YAML document on top of c, and validates the result.
// Settings missing from the document keep their value in c.
func (c Config) Overlay(r io.Reader) (Config, error) {
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decoding graph config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile is a convenience wrapper around Load.
func LoadFile(path string) (Config, error) {
	return Default().OverlayFile(path)
}

// OverlayFile is a convenience wrapper around Overlay.
func (c Config) OverlayFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return c.Overlay(f)
}
