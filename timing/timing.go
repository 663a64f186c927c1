//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records wall-clock samples for hashing runs and
// renders a throughput report.
package timing

import (
	"fmt"
	"os"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// Sample contains information about one timing sample. Bytes is the
// amount of data hashed during the sample.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Bytes uint64
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample covering the time since the previous
// sample (or since Start for the first one).
func (t *Timing) Sample(label string, bytes uint64) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Bytes: bytes,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Speed returns the sample's throughput in bytes per second.
func (s *Sample) Speed() float64 {
	d := s.End.Sub(s.Start)
	if d <= 0 {
		return 0
	}
	return float64(s.Bytes) / d.Seconds()
}

// Print prints the profiling report to standard output.
func (t *Timing) Print() {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)
	tab.Header("Speed").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	var totalBytes uint64

	for _, sample := range t.Samples {
		duration := sample.End.Sub(sample.Start)
		totalBytes += sample.Bytes

		row := tab.Row()
		row.Column(sample.Label)
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(total)*100))
		row.Column(FileSize(sample.Bytes).String())
		row.Column(FileSize(sample.Speed()).String() + "/s")
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(totalBytes).String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	tab.Print(os.Stdout)
}

// FileSize formats byte counts in human readable units.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%d TB", uint64(s)/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%d GB", uint64(s)/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%d MB", uint64(s)/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%d kB", uint64(s)/1000)
	} else {
		return fmt.Sprintf("%d B", uint64(s))
	}
}
