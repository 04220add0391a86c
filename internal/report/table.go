// Package report renders property summaries, spectra and search results as
// console tables and HTML charts.
package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/markkurossi/tabulate"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/classes"
	"github.com/Han-16/boolext/internal/search"
)

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Properties prints one row per analyzed function.
func Properties(w io.Writer, rows []boolfn.Properties) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Function").SetAlign(tabulate.ML)
	for _, h := range []string{"Vars", "Weight", "Deg", "Bal", "SAC", "PC", "CI", "Lin", "NL", "Δ"} {
		tab.Header(h).SetAlign(tabulate.MR)
	}
	for _, p := range rows {
		row := tab.Row()
		row.Column(p.Function)
		row.Column(strconv.Itoa(p.Vars))
		row.Column(strconv.Itoa(p.Weight))
		row.Column(strconv.Itoa(p.Degree))
		row.Column(yesNo(p.Balanced))
		row.Column(yesNo(p.SAC))
		row.Column(strconv.Itoa(p.PropagationDegree))
		row.Column(yesNo(p.CorrelationImmune))
		row.Column(yesNo(p.Linear))
		row.Column(strconv.Itoa(p.Nonlinearity))
		row.Column(strconv.Itoa(p.AbsoluteIndicator))
	}
	tab.Print(w)
}

// Spectra prints the Walsh and autocorrelation multiplicities side by side.
func Spectra(w io.Writer, walsh, autocorrelation boolfn.Spectrum) {
	keys := append(walsh.Keys(), autocorrelation.Keys()...)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	slices.Reverse(keys)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("|value|").SetAlign(tabulate.MR)
	tab.Header("Walsh").SetAlign(tabulate.MR)
	tab.Header("Autocorrelation").SetAlign(tabulate.MR)
	for _, k := range keys {
		row := tab.Row()
		row.Column(strconv.Itoa(k))
		row.Column(count(walsh, k))
		row.Column(count(autocorrelation, k))
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(strconv.Itoa(walsh.Total())).SetFormat(tabulate.FmtBold)
	row.Column(strconv.Itoa(autocorrelation.Total())).SetFormat(tabulate.FmtBold)
	tab.Print(w)
}

func count(s boolfn.Spectrum, k int) string {
	if c, ok := s[k]; ok {
		return strconv.Itoa(c)
	}
	return ""
}

// Classes prints the per-class counts of a classification run.
func Classes(w io.Writer, table *classes.Table, counts *search.ClassCounts) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Representative").SetAlign(tabulate.ML)
	tab.Header("Functions").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	total := counts.Total()
	for i, rep := range table.Representatives {
		c := counts.Count(i)
		row := tab.Row()
		row.Column(strconv.Itoa(i))
		row.Column(rep.String())
		row.Column(strconv.FormatUint(c, 10))
		row.Column(percent(c, total))
	}
	row := tab.Row()
	row.Column("")
	row.Column("Anomalies").SetFormat(tabulate.FmtItalic)
	row.Column(strconv.FormatUint(counts.Anomalies(), 10)).SetFormat(tabulate.FmtItalic)
	row.Column(percent(counts.Anomalies(), total)).SetFormat(tabulate.FmtItalic)
	tab.Print(w)
}

// Survey prints the property counts of a survey run.
func Survey(w io.Writer, s search.Survey) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Property").SetAlign(tabulate.ML)
	tab.Header("Functions").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	add := func(label string, n uint64) {
		row := tab.Row()
		row.Column(label)
		row.Column(strconv.FormatUint(n, 10))
		row.Column(percent(n, s.Functions))
	}
	add("balanced", s.Balanced)
	add("SAC", s.SAC)
	for k := 2; k < len(s.Propagation); k++ {
		add(fmt.Sprintf("PC(%d)", k), s.Propagation[k])
	}
	add("correlation immune", s.CorrelationImmune)
	add("affine", s.Linear)
	for d, n := range s.Degrees {
		add(fmt.Sprintf("degree %d", d), n)
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(strconv.FormatUint(s.Functions, 10)).SetFormat(tabulate.FmtBold)
	row.Column("")
	tab.Print(w)
}

func percent(n, total uint64) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f%%", float64(n)/float64(total)*100)
}
