package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mrua/internal/export"
	"github.com/san-kum/mrua/internal/loop"
	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/notify"
	"github.com/san-kum/mrua/internal/render"
)

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	queue := loop.NewFrameQueue()
	clock := motion.NewManualClock(time.Now())
	layout := render.DefaultLayout
	layout.Width, layout.Height = cfg.Display.Width, cfg.Display.Height
	driver := loop.NewDriver(loop.Options{
		Scheduler:     queue,
		Clock:         clock,
		Renderer:      render.New(layout),
		TimeStep:      cfg.Simulation.TimeStep,
		ViewportWidth: cfg.Display.Width,
	}, cfg.Motion())

	trace := &loop.Trace{}
	driver.AddObserver(trace)
	driver.AddObserver(loop.Hooks{Event: func(e motion.Event) {
		fmt.Println(notify.Message(e))
	}})

	if err := driver.Start(cfg.Motion()); err != nil {
		return err
	}
	start := time.Now()
	frames, err := loop.RunToEnd(ctx, driver, queue, clock, maxFrames)
	if err != nil {
		return err
	}
	fmt.Printf("\ncompleted %d frames in %v\n\n", frames, time.Since(start))

	summary := driver.Summary()
	fmt.Print(notify.SummaryText(summary))

	if plot && len(trace.Samples) > 0 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(downsample(trace.Velocities(), 80),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("velocity (m/s) vs time"),
		))
	}

	if framePath != "" {
		p, err := export.NewPNG(cfg.Display.Width, cfg.Display.Height)
		if err != nil {
			return err
		}
		defer p.Close()
		driver.SetSurface(p)
		if err := p.SavePNG(framePath); err != nil {
			return err
		}
		fmt.Printf("frame: %s\n", framePath)
	}

	if svgPath != "" {
		svg := export.NewSVG(cfg.Display.Width, cfg.Display.Height)
		driver.SetSurface(svg)
		if err := os.WriteFile(svgPath, []byte(svg.String()), 0644); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgPath)
	}

	if chartPath != "" {
		f, err := os.Create(chartPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.Chart(f, trace.Samples, cfg.Motion(), 1000, 500); err != nil {
			return err
		}
		fmt.Printf("chart: %s\n", chartPath)
	}

	if jsonPath == "" {
		return nil
	}
	return export.ExportJSON(jsonPath, export.Run{
		Config:   cfg.Motion(),
		TimeStep: driver.TimeStep(),
		Frames:   frames,
		Summary:  summary,
		Samples:  trace.Samples,
		Events:   trace.Events,
	})
}

// downsample keeps at most n evenly spaced values.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*(len(data)-1)/(n-1)]
	}
	return out
}
