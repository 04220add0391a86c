package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Han-16/boolext/internal/boolfn"
)

func spectrumBar(title, series string, s boolfn.Spectrum) *charts.Bar {
	keys := s.Keys()
	labels := make([]string, len(keys))
	items := make([]opts.BarData, len(keys))
	// Ascending magnitudes read left to right.
	for i := range keys {
		k := keys[len(keys)-1-i]
		labels[i] = strconv.Itoa(k)
		items[i] = opts.BarData{Value: s[k]}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d values, mass %d", s.Total(), s.Mass()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries(series, items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}

// SpectrumChart writes an HTML page with bar charts of the absolute Walsh
// and autocorrelation spectra of one function.
func SpectrumChart(w io.Writer, function string, walsh, autocorrelation boolfn.Spectrum) error {
	page := components.NewPage()
	page.PageTitle = "Spectra of " + function
	page.AddCharts(
		spectrumBar("Walsh spectrum of "+function, "|W(w)|", walsh),
		spectrumBar("Autocorrelation spectrum of "+function, "|r(w)|", autocorrelation),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	return nil
}
