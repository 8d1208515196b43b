package statsservice

import (
	"bytes"
	"time"

	statsdomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used for rendered charts.
type ChartPalette struct {
	Background  drawing.Color
	PrimaryLine drawing.Color
	AccentLine  drawing.Color
	TextColor   drawing.Color
}

// DefaultPalette is a felt-table green with ivory text.
var DefaultPalette = ChartPalette{
	Background:  drawing.ColorFromHex("0f3d2e"),
	PrimaryLine: drawing.ColorFromHex("e8d9a8"),
	AccentLine:  drawing.ColorFromHex("d64545"),
	TextColor:   drawing.ColorFromHex("f5f1e6"),
}

// minChartPoints is the fewest games a line chart can be drawn from.
const minChartPoints = 2

// GeneratePointChart produces a PNG line chart of cumulative points over time.
func GeneratePointChart(points []statsdomain.CumulativePoint, palette ChartPalette) ([]byte, error) {
	if len(points) < minChartPoints {
		return renderNoDataPlaceholder(palette)
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.PlayedAt
		yValues[i] = p.Total
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Played at",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Total point",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total point",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: palette.PrimaryLine,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    palette.AccentLine,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a renderer; a chart
// without series refuses to render.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "Not enough games yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
