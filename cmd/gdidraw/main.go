// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command gdidraw plays a YAML metafile onto a raster surface and saves the
// result as PNG.
//
// Usage:
//
//	gdidraw -in scene.yaml -out scene.png [-config gdidraw.yaml] [-record out.yaml] [-v]
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/driver/raster"
	"github.com/gogpu/gdi/driver/record"
	"github.com/gogpu/gdi/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "gdidraw.yaml", "configuration file")
		input      = flag.String("in", "", "metafile to play")
		output     = flag.String("out", "out.png", "output PNG file")
		recordPath = flag.String("record", "", "write the operations played to this metafile")
		width      = flag.Int("width", 0, "surface width, overrides the config")
		height     = flag.Int("height", 0, "surface height, overrides the config")
		verbose    = flag.Bool("v", false, "log driver dispatch at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gdi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.LoadOptional(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	if err := run(cfg, *input, *output, *recordPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("Saved %s (%dx%d)", *output, cfg.Width, cfg.Height)
}

func run(cfg *config.Config, input, output, recordPath string) error {
	pm := raster.NewPixmap(cfg.Width, cfg.Height)
	pm.Clear(cfg.BackgroundColor())

	var drivers []gdi.Driver
	var rec *record.Driver
	if recordPath != "" {
		rec = record.New()
		drivers = append(drivers, rec)
	}
	for _, name := range cfg.Chain {
		drv, err := gdi.NewDriver(name, pm)
		if err != nil {
			return err
		}
		drivers = append(drivers, drv)
	}
	dc, err := gdi.NewDC(gdi.WithDrivers(drivers...), gdi.WithFlattener(cfg.Flattener()))
	if err != nil {
		return err
	}
	gdi.Logger().Debug("gdidraw: surface ready", "chain", dc.Chain(), "width", cfg.Width, "height", cfg.Height)

	if input != "" {
		if err := playFile(dc, input); err != nil {
			return err
		}
	}

	if err := pm.SavePNG(output); err != nil {
		return fmt.Errorf("failed to save %s: %w", output, err)
	}

	if rec != nil {
		if err := writeMetafile(rec.Metafile(), recordPath); err != nil {
			return err
		}
	}
	return nil
}

func playFile(dc *gdi.DC, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	mf, err := record.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return record.Play(dc, mf)
}

func writeMetafile(mf *record.Metafile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := mf.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
