// Command decoplan replays a recorded dive profile through the
// decompression engine and prints a ceiling/NDL/deco-schedule report.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"

	"github.com/depthcurve/decoplan/internal/deco"
	"github.com/depthcurve/decoplan/internal/gas"
	"github.com/depthcurve/decoplan/internal/units"
)

type profileGas struct {
	FO2 float64 `json:"fo2"`
	FHe float64 `json:"fhe"`
}

type profileSegment struct {
	DepthM  float64    `json:"depth_m"`
	TimeMin float64    `json:"time_min"`
	Gas     profileGas `json:"gas"`
}

type profile struct {
	SurfacePressureMbar float64              `json:"surface_pressure_mbar"`
	GradientFactors     deco.GradientFactors `json:"gradient_factors"`
	Segments            []profileSegment     `json:"segments"`
	DecoGases           []profileGas         `json:"deco_gases"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	p, err := readProfile(path)
	if err != nil {
		slog.Error("failed to read profile", "error", err)
		os.Exit(1)
	}

	cfg := deco.DefaultConfig()
	if p.SurfacePressureMbar != 0 {
		cfg.SurfacePressureMbar = p.SurfacePressureMbar
	}
	if p.GradientFactors.Low != 0 || p.GradientFactors.High != 0 {
		cfg.GradientFactors = p.GradientFactors
	}

	m, err := deco.New(cfg)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}

	slog.Info("replaying dive profile", "session", m.SessionID, "segments", len(p.Segments))

	colored := isatty.IsTerminal(os.Stdout.Fd())
	runAt := strftime.Format("%Y-%m-%d %H:%M:%S", timeNow())
	fmt.Printf("decoplan — session %s — run %s\n", m.SessionID, runAt)

	for i, seg := range p.Segments {
		g, err := gas.New(seg.Gas.FO2, seg.Gas.FHe)
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
		if err := m.Record(units.FromMeters(seg.DepthM), units.FromMinutes(seg.TimeMin), g); err != nil {
			reportError(err)
			os.Exit(1)
		}

		ceiling := m.Ceiling()
		ndl := m.NDL()
		line := fmt.Sprintf("segment %d: %.0f m for %s — ceiling %.1f m, NDL %s",
			i+1, seg.DepthM, humanize.Comma(int64(seg.TimeMin))+" min",
			ceiling.Meters(), humanize.Comma(int64(ndl.Minutes()))+" min")
		if colored && ceiling.Meters() > 0 {
			line = "\x1b[33m" + line + "\x1b[0m"
		}
		fmt.Println(line)
	}

	gf99, gfSurf := m.Supersaturation()
	fmt.Printf("final: gf99 %.1f%%, gfSurf %.1f%%, CNS %.1f%%, OTU %.1f\n",
		gf99, gfSurf, m.CNS(), m.OTU())

	if !m.InDeco() {
		fmt.Println("no decompression obligation")
		return
	}

	gases, err := decoGases(p, m)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}

	runtime, err := m.Deco(gases)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}

	fmt.Printf("decompression schedule — TTS %s\n", humanize.Comma(int64(runtime.TTS.Seconds()))+" s")
	for _, s := range runtime.Stages {
		label := fmt.Sprintf("  %-9s %.1f m -> %.1f m, %s, fO2=%.2f fHe=%.2f",
			s.StageType, s.StartDepth.Meters(), s.EndDepth.Meters(),
			humanize.Comma(int64(s.Duration.Seconds()))+" s", s.Gas.FO2, s.Gas.FHe)
		if colored && s.StageType == deco.DecoStop {
			label = "\x1b[36m" + label + "\x1b[0m"
		}
		fmt.Println(label)
	}
}

func decoGases(p profile, m *deco.Model) ([]gas.Gas, error) {
	if len(p.DecoGases) == 0 {
		return gas.StandardDecoSet(), nil
	}
	out := make([]gas.Gas, len(p.DecoGases))
	for i, g := range p.DecoGases {
		parsed, err := gas.New(g.FO2, g.FHe)
		if err != nil {
			return nil, err
		}
		out[i] = parsed
	}
	return out, nil
}

func readProfile(path string) (profile, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return profile{}, err
		}
		defer f.Close()
		r = f
	}

	var p profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func reportError(err error) {
	switch e := err.(type) {
	case *deco.ConfigError:
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", e.Error())
	case *deco.DepthError:
		fmt.Fprintf(os.Stderr, "depth out of range: %s\n", e.Error())
	case *gas.InvalidGasError:
		fmt.Fprintf(os.Stderr, "invalid gas: %s\n", e.Error())
	case *deco.DecoError:
		fmt.Fprintf(os.Stderr, "deco planning failed: %s\n", e.Error())
	default:
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
	}
}

// timeNow exists so the one non-deterministic call in this command is a
// single, obvious seam.
func timeNow() time.Time {
	return time.Now()
}
