// Command trackprofile samples the reference track loop and writes an HTML
// report with elevation and curvature profiles plus summary statistics.
// Sampling is fanned out across a worker pool in disjoint index ranges.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"github.com/vamsipaul1/Python-Project-Rollercoaster/engine/track"
)

func main() {
	samples := flag.Int("samples", 1000, "number of samples along the loop")
	out := flag.String("out", "profile.html", "output HTML file")
	workers := flag.Int("workers", runtime.NumCPU(), "sampling worker count")
	flag.Parse()

	if *samples < 2 {
		log.Fatalf("samples must be at least 2, got %d", *samples)
	}
	if *workers < 1 {
		*workers = 1
	}

	trk := track.NewTrack()
	elevations, curvatures := sampleTrack(trk, *samples, *workers)

	log.Printf("sampled %d points across %d segments, approximate length %.2f units",
		*samples, trk.SegmentCount(), trk.Length(*samples))
	logCurvatureStats(curvatures)

	if err := writeReport(*out, elevations, curvatures); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("wrote %s", *out)
}

// sampleTrack evaluates elevation and curvature at sampleCount evenly spaced
// parameters. Workers write into disjoint index ranges of the preallocated
// slices, so no locking is needed; a WaitGroup is the completion barrier.
func sampleTrack(trk track.Track, sampleCount, workers int) (elevations, curvatures []float64) {
	elevations = make([]float64, sampleCount)
	curvatures = make([]float64, sampleCount)

	pool := worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)

	chunk := (sampleCount + workers - 1) / workers
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < sampleCount; start += chunk {
		end := start + chunk
		if end > sampleCount {
			end = sampleCount
		}

		wg.Add(1)
		lo, hi := start, end
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					s := trk.SampleAt(float32(i) / float32(sampleCount))
					elevations[i] = float64(s.Position.Y)
					curvatures[i] = float64(s.Curvature)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return elevations, curvatures
}

func logCurvatureStats(curvatures []float64) {
	sorted := make([]float64, len(curvatures))
	copy(sorted, curvatures)
	sort.Float64s(sorted)

	mean := stat.Mean(curvatures, nil)
	stddev := stat.StdDev(curvatures, nil)
	p95 := stat.Quantile(0.95, stat.Empirical, sorted, nil)
	max := sorted[len(sorted)-1]

	log.Printf("curvature: mean=%.4f stddev=%.4f p95=%.4f max=%.4f", mean, stddev, p95, max)
}

// writeReport renders the elevation and curvature line charts to a single
// HTML page at path.
func writeReport(path string, elevations, curvatures []float64) error {
	xs := make([]string, len(elevations))
	elevData := make([]opts.LineData, len(elevations))
	curvData := make([]opts.LineData, len(curvatures))
	for i := range elevations {
		xs[i] = fmt.Sprintf("%.3f", float64(i)/float64(len(elevations)))
		elevData[i] = opts.LineData{Value: elevations[i]}
		curvData[i] = opts.LineData{Value: curvatures[i]}
	}

	elevation := charts.NewLine()
	elevation.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Track Elevation", Subtitle: fmt.Sprintf("%d samples", len(elevations))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "height (units)"}),
	)
	elevation.SetXAxis(xs).
		AddSeries("elevation", elevData, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	curvature := charts.NewLine()
	curvature.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Track Curvature"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "curvature (1/units)"}),
	)
	curvature.SetXAxis(xs).
		AddSeries("curvature", curvData, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	page := components.NewPage()
	page.AddCharts(elevation, curvature)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}
