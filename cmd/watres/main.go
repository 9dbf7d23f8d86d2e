/*
 * main.go, part of solvtrack.
 *
 * Copyright 2020 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//watres follows the water molecules close to a solute along a multi-model PDB trajectory.
//The trajectory is divided in windows of frame_count frames. The waters close to the solute
//in the first frame of each window are found, and, for each following frame in the window, the
//number of those waters still close to the solute is counted. The program prints and writes to outfile
//the mean and standard deviation of those numbers for each frame of the window, over all windows.
//
//Usage:
//
//	watres [flags] frames outfile frame_count
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/solvtrack/chemplot"
	"github.com/rmera/solvtrack/chemstat"
	"github.com/rmera/solvtrack/solv"
	"github.com/rmera/solvtrack/traj/pdbtraj"
	"gonum.org/v1/gonum/mat"
)

// params are the parameters of one run.
type params struct {
	frames     string
	outfile    string
	framecount int
	distance   int
	particle   string
	separate   []string
	chunk      int
	plot       string
	progress   int
}

// parseArgs reads the command line. Flags can be given before, after or among the positional arguments.
func parseArgs(args []string, stderr io.Writer) (*params, error) {
	p := new(params)
	var separate, config string
	fs := flag.NewFlagSet("watres", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: watres [flags] frames outfile frame_count")
		fs.PrintDefaults()
	}
	for _, n := range []string{"distance", "d"} {
		fs.IntVar(&p.distance, n, 4, "cutoff distance from the solute, in A")
	}
	for _, n := range []string{"particle", "p"} {
		fs.StringVar(&p.particle, n, "CHL", "residue name of the solute")
	}
	for _, n := range []string{"separate", "s"} {
		fs.StringVar(&separate, n, "", "solute atoms to analyze separately, separated by commas, e.g: HO3,O3")
	}
	for _, n := range []string{"config", "c"} {
		fs.StringVar(&config, n, "", "YAML configuration file")
	}
	fs.IntVar(&p.chunk, "chunk", pdbtraj.DefaultOptions().ChunkSize(), "size in bytes of the blocks read from the trajectory")
	fs.StringVar(&p.plot, "plot", "", "plot the results to this file (png, svg or pdf)")
	fs.IntVar(&p.progress, "progress", 1000, "log the progress every this many frames (0 to disable)")

	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		//after "--" everything is positional
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			pos = append(pos, rest...)
			break
		}
		args = rest
		pos = append(pos, args[0])
		args = args[1:]
	}
	if len(pos) != 3 {
		fs.Usage()
		return nil, fmt.Errorf("3 positional arguments expected, got %d", len(pos))
	}
	var err error
	p.frames, p.outfile = pos[0], pos[1]
	p.framecount, err = strconv.Atoi(pos[2])
	if err != nil || p.framecount <= 0 {
		return nil, fmt.Errorf("frame_count must be a positive integer, got '%s'", pos[2])
	}
	p.separate = strings.Split(separate, ",")

	if config == "" {
		return p, p.check()
	}
	c, err := NewCfg(config)
	if err != nil {
		return nil, fmt.Errorf("NewCfg: %w", err)
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if c.Distance > 0 && !set["distance"] && !set["d"] {
		p.distance = c.Distance
	}
	if c.Particle != "" && !set["particle"] && !set["p"] {
		p.particle = c.Particle
	}
	if len(c.Separate) > 0 && !set["separate"] && !set["s"] {
		p.separate = c.Separate
	}
	if c.Chunk > 0 && !set["chunk"] {
		p.chunk = c.Chunk
	}
	if c.Plot != "" && !set["plot"] {
		p.plot = c.Plot
	}
	if c.Progress != nil && !set["progress"] {
		p.progress = *c.Progress
	}
	return p, p.check()
}

func (p *params) check() error {
	if p.distance <= 0 {
		return fmt.Errorf("the distance must be greater than 0, got %d", p.distance)
	}
	if p.chunk <= 0 {
		return fmt.Errorf("the chunk size must be greater than 0, got %d", p.chunk)
	}
	if p.progress < 0 {
		return fmt.Errorf("progress cannot be lower than 0")
	}
	return nil
}

// run performs the analysis described by p, prints the results to stdout
// and writes them to p.outfile.
func run(p *params, stdout io.Writer) error {
	o := pdbtraj.DefaultOptions()
	o.ChunkSize(p.chunk)
	log.Printf("Reading trajectory `%s`\n", p.frames)
	traj, err := pdbtraj.New(p.frames, o)
	if err != nil {
		return err
	}
	defer traj.Close()

	so := solv.DefaultOptions()
	so.Cutoff(float64(p.distance))
	so.Separate(p.separate)
	so.Progress(p.progress)
	res, err := solv.Residence(traj, p.particle, p.framecount, so)
	if err != nil {
		return err
	}
	log.Printf("%d frames read, %d complete windows of %d frames\n", traj.Frames(), traj.Frames()/p.framecount, p.framecount)

	fmt.Fprintf(stdout, "%v\n", mat.Formatted(res, mat.Squeeze()))

	out, err := os.Create(p.outfile)
	if err != nil {
		return err
	}
	err = chemstat.WriteCSV(out, res.T())
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", p.outfile, err)
	}
	log.Printf("Results written to `%s`\n", p.outfile)

	if p.plot != "" {
		names := []string{p.particle}
		if sep := so.Separate(); len(sep) > 0 {
			names[0] = p.particle + " (rest)"
			names = append(names, strings.Join(sep, " "))
		}
		title := fmt.Sprintf("Waters within %d A of %s", p.distance, p.particle)
		if err := chemplot.Occupancy(res, names, title, p.plot); err != nil {
			return fmt.Errorf("Occupancy: %w", err)
		}
		log.Printf("Plot written to `%s`\n", p.plot)
	}
	return nil
}

func main() {
	p, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}
	err = run(p, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Done")
}
