/*
 * doc.go, part of solvtrack.
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

/*Package chem is the main package of solvtrack. It provides the flat atom records
read from each frame of a multi-model PDB trajectory, the parser that extracts them
from one frame's text, the distance function, and the error interfaces shared by
all the packages of the module.


	**solvtrack packages**

    chem (this package): Atom records, ParseFrame, Dist, errors.

    traj/pdbtraj: Streams the frames of a (possibly gzip or zstd compressed)
	multi-model PDB file, one at a time, without loading the file in memory.

    solv: Finds the water molecules around a solute in a frame, and follows them
	through windows of frames (water residence).

    chemstat: Splits the per-frame counts into windows and obtains the mean and
	standard deviation for each frame offset.

    chemplot: Plots the results with gonum/plot.

    cmd/watres: The command line program.

Coordinates are gonum r3.Vec values. Distances are plain Euclidean distances,
periodic boundary conditions are not considered, so the trajectory should be
processed (i.e. made whole and centered on the solute) before the analysis.*/
package chem
