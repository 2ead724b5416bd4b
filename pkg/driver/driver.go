/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package driver

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"vehicles/pkg/vehicle"
)

const Separator = "------------------------"

type Builder func(out io.Writer, logger *zap.SugaredLogger) vehicle.Vehicle

type Step struct {
	Build    Builder
	Distance int
}

// DefaultPlan is the fixed demonstration sequence.
var DefaultPlan = []Step{
	{Build: vehicle.NewVehicle, Distance: 5},
	{Build: vehicle.NewCar, Distance: 8},
	{Build: vehicle.NewBicycle, Distance: 5},
}

type Driver interface {
	Run() ([]Movement, error)
}

type driver struct {
	out    io.Writer
	logger *zap.SugaredLogger
	plan   []Step
}

// Run moves each vehicle of the plan once, in order, with a separator line
// between consecutive moves. It returns the movements performed so far on error.
func (d *driver) Run() ([]Movement, error) {
	movements := make([]Movement, 0, len(d.plan))

	var current vehicle.Vehicle
	for i, step := range d.plan {
		current = step.Build(d.out, d.logger)
		current.Move(step.Distance)

		mv := NewMovement(i+1, current.Kind(), step.Distance)
		mv.AddNote(fmt.Sprintf("dispatched to %T", current))
		if step.Distance < 0 {
			mv.AddNote("negative distance")
		}
		movements = append(movements, mv)

		d.logger.Debugw("step complete", "sequence", mv.Sequence(), "kind", string(mv.Kind()))

		if i == len(d.plan)-1 {
			break
		}

		_, err := fmt.Fprintln(d.out, Separator)
		if err != nil {
			return movements, fmt.Errorf("could not write separator after step %d: %s", mv.Sequence(), err.Error())
		}
	}

	return movements, nil
}

func NewDriver(out io.Writer, logger *zap.SugaredLogger, plan []Step) Driver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &driver{
		out:    out,
		logger: logger,
		plan:   plan,
	}
}
