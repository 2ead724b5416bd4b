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
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestVehicle(t *testing.T) {
	spec.Run(t, "Vehicle spec", testVehicle, spec.Report(report.Terminal{}))
}

type constructor func(out io.Writer, logger *zap.SugaredLogger) Vehicle

func testVehicle(t *testing.T, describe spec.G, it spec.S) {
	var out *bytes.Buffer
	var logs *observer.ObservedLogs
	var logger *zap.SugaredLogger

	it.Before(func() {
		out = new(bytes.Buffer)
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		logger = zap.New(core).Sugar()
	})

	variants := []struct {
		kind     Kind
		build    constructor
		word     string
		distance int
	}{
		{KindVehicle, NewVehicle, "Generic vehicle", 5},
		{KindCar, NewCar, "Car", 8},
		{KindBicycle, NewBicycle, "Bicycle", 5},
	}

	for _, variant := range variants {
		variant := variant

		describe(string(variant.kind), func() {
			var subject Vehicle

			it.Before(func() {
				subject = variant.build(out, logger)
			})

			describe("Kind()", func() {
				it("reports its own kind", func() {
					assert.Equal(t, variant.kind, subject.Kind())
				})
			})

			describe("Move()", func() {
				it("prints exactly one line", func() {
					subject.Move(variant.distance)
					assert.Equal(t, 1, strings.Count(out.String(), "\n"))
					assert.True(t, strings.HasSuffix(out.String(), "\n"))
				})

				it("includes the distance", func() {
					subject.Move(variant.distance)
					assert.Contains(t, out.String(), strconv.Itoa(variant.distance))
				})

				it("uses variant-specific wording", func() {
					subject.Move(variant.distance)
					assert.True(t, strings.HasPrefix(out.String(), variant.word))
				})

				it("prints the same line every time it is called with the same distance", func() {
					subject.Move(variant.distance)
					first := out.String()
					out.Reset()

					subject.Move(variant.distance)
					assert.Equal(t, first, out.String())
				})

				it("accepts zero without warning", func() {
					subject.Move(0)
					assert.Contains(t, out.String(), "0")
					assert.Equal(t, 0, logs.FilterMessage("distance is negative").Len())
				})

				it("logs each move at debug level", func() {
					subject.Move(variant.distance)
					moving := logs.FilterMessage("moving").All()
					require.Len(t, moving, 1)
					assert.Equal(t, zapcore.DebugLevel, moving[0].Level)
					assert.Equal(t, string(variant.kind), moving[0].ContextMap()["kind"])
				})

				describe("when the distance is negative", func() {
					it.Before(func() {
						subject.Move(-12)
					})

					it("still prints its line", func() {
						assert.Contains(t, out.String(), "-12")
						assert.Equal(t, 1, strings.Count(out.String(), "\n"))
					})

					it("logs a warning", func() {
						warnings := logs.FilterMessage("distance is negative").All()
						require.Len(t, warnings, 1)
						assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
						assert.Equal(t, int64(-12), warnings[0].ContextMap()["distance"])
					})
				})
			})
		})
	}

	describe("dispatch through a Vehicle-typed reference", func() {
		var subject Vehicle

		it("uses the base behavior for a plain vehicle", func() {
			subject = NewVehicle(out, logger)
			subject.Move(5)
			assert.Equal(t, "Generic vehicle moving 5 units\n", out.String())
		})

		it("uses the Car override once rebound to a car", func() {
			subject = NewVehicle(out, logger)
			subject.Move(8)
			out.Reset()

			subject = NewCar(out, logger)
			subject.Move(8)
			assert.Equal(t, "Car driving 8 km\n", out.String())
		})

		it("uses the Bicycle override once rebound to a bicycle", func() {
			subject = NewCar(out, logger)
			subject.Move(5)
			out.Reset()

			subject = NewBicycle(out, logger)
			subject.Move(5)
			assert.Equal(t, "Bicycle riding 5 km\n", out.String())
		})
	})

	describe("without a logger", func() {
		it("still moves", func() {
			NewCar(out, nil).Move(-3)
			assert.Equal(t, "Car driving -3 km\n", out.String())
		})
	})
}
