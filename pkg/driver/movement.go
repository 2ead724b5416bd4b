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

import "vehicles/pkg/vehicle"

type Annotateable interface {
	Notes() []string
	AddNote(note string)
}

type coreMovement interface {
	Sequence() int
	Kind() vehicle.Kind
	Distance() int
}

type Movement interface {
	coreMovement
	Annotateable
}

type move struct {
	sequence int
	kind     vehicle.Kind
	distance int
	notes    []string
}

func (mv *move) Sequence() int {
	return mv.sequence
}

func (mv *move) Kind() vehicle.Kind {
	return mv.kind
}

func (mv *move) Distance() int {
	return mv.distance
}

func (mv *move) Notes() []string {
	return mv.notes
}

func (mv *move) AddNote(note string) {
	mv.notes = append(mv.notes, note)
}

func NewMovement(sequence int, kind vehicle.Kind, distance int) Movement {
	return &move{
		sequence: sequence,
		kind:     kind,
		distance: distance,
		notes:    make([]string, 0),
	}
}
