package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"nescore/nes"
)

// runConform runs every .nes ROM under dir headlessly for cfg.Frames
// frames, one independent Console per ROM, in parallel via errgroup --
// each Console stays single-threaded, and only the harness parallelizes
// across separate instances.
func runConform(cfg ConformCmd) error {
	entries, err := os.ReadDir(cfg.RomDir)
	if err != nil {
		return fmt.Errorf("conform: %w", err)
	}

	var g errgroup.Group
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".nes" {
			continue
		}
		path := filepath.Join(cfg.RomDir, entry.Name())
		g.Go(func() error {
			return conformOne(path, cfg.Frames)
		})
	}
	return g.Wait()
}

func conformOne(path string, frames int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", path, r)
		}
	}()

	rom, err := readRom(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	console, err := nes.NewConsole(rom, nil, false)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	console.Reset()

	for i := 0; i < frames; i++ {
		console.DrawFrame()
	}
	fmt.Printf("%s: ran %d frames\n", path, frames)
	return nil
}
