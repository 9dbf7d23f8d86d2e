/*
 * cfg.go, part of solvtrack.
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

package main

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cfg contains the parameters that can be given in a configuration file.
// A zero value means that the field was not given. Command line flags
// take precedence over the values in the file.
type Cfg struct {
	// Distance is the cutoff distance, in the units of the trajectory (usually A)
	Distance int `yaml:"distance"`

	// Particle is the residue name of the solute
	Particle string `yaml:"particle"`

	// Separate are the names of the solute atoms analyzed separately
	Separate []string `yaml:"separate"`

	// Chunk is the size, in bytes, of the blocks read from the trajectory
	Chunk int `yaml:"chunk"`

	// Plot is the file where the results are plotted. No plot is produced if empty
	Plot string `yaml:"plot"`

	// Progress is every how many frames the progress is logged. 0 disables the
	// progress messages, so nil means that the field was not given.
	Progress *int `yaml:"progress"`
}

// NewCfg opens and decodes the specified configuration file. The file must be
// a YAML file. This function automatically calls the Check method.
func NewCfg(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	err = dec.Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	err = c.Check()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check checks if Cfg is correct. It returns an error if a field doesn't meet
// the requirements.
func (c *Cfg) Check() error {
	if c.Distance < 0 {
		return fmt.Errorf("distance cannot be lower than 0")
	}
	if c.Chunk < 0 {
		return fmt.Errorf("chunk cannot be lower than 0")
	}
	if c.Progress != nil && *c.Progress < 0 {
		return fmt.Errorf("progress cannot be lower than 0")
	}
	return nil
}
