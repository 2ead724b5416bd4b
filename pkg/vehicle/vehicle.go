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

package vehicle

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

type Kind string

const (
	KindVehicle Kind = "Vehicle"
	KindCar     Kind = "Car"
	KindBicycle Kind = "Bicycle"
)

type Mover interface {
	Move(distance int)
}

type Vehicle interface {
	Kind() Kind
	Mover
}

// vehicle is the generic variant. Car and Bicycle embed it for its writer and logger,
// and must override both Kind and Move: an embedded method never sees the outer type.
type vehicle struct {
	out    io.Writer
	logger *zap.SugaredLogger
}

func (v *vehicle) Kind() Kind {
	return KindVehicle
}

func (v *vehicle) Move(distance int) {
	v.announce(KindVehicle, distance, "Generic vehicle moving %d units")
}

// announce writes exactly one line. Negative distances are only warned about.
func (v *vehicle) announce(kind Kind, distance int, format string) {
	if distance < 0 {
		v.logger.Warnw("distance is negative", "kind", string(kind), "distance", distance)
	}
	v.logger.Debugw("moving", "kind", string(kind), "distance", distance)

	fmt.Fprintf(v.out, format+"\n", distance)
}

func newBaseVehicle(out io.Writer, logger *zap.SugaredLogger) vehicle {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return vehicle{
		out:    out,
		logger: logger,
	}
}

func NewVehicle(out io.Writer, logger *zap.SugaredLogger) Vehicle {
	v := newBaseVehicle(out, logger)
	return &v
}
