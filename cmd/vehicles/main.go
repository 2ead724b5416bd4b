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

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bvinc/go-sqlite-lite/sqlite3"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vehicles/pkg/data"
	"vehicles/pkg/driver"
)

var (
	showTrace = flag.Bool("showTrace", false, "Show the movement trace after the run")
	color     = flag.Bool("color", true, "Colourise the movement trace")
	logLevel  = flag.String("logLevel", "info", "Log level for vehicle and driver logs (debug, info, warn, error)")
)

func main() {
	flag.Parse()
	r := NewRunner(os.Stdout)

	movements, err := r.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "there was an error while driving: %s\n", err.Error())
		os.Exit(1)
	}

	if !*showTrace {
		fmt.Fprint(os.Stderr, r.Logs())
		return
	}

	fmt.Print("\n")
	err = r.Report(movements, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "there was an error during reporting: %s\n", err.Error())
		os.Exit(1)
	}
}

type Runner interface {
	Run() ([]driver.Movement, error)
	Report(movements []driver.Movement, writer io.Writer) error
	Logs() string
}

type runner struct {
	driver driver.Driver
	logbuf *bytes.Buffer
	au     aurora.Aurora
}

func (r *runner) Run() ([]driver.Movement, error) {
	return r.driver.Run()
}

func (r *runner) Logs() string {
	return r.logbuf.String()
}

func (r *runner) Report(movements []driver.Movement, writer io.Writer) error {
	au := r.au

	fmt.Fprintf(writer,
		"%5s      %15s %-4d\n\n",
		au.Bold("Done."),
		au.BgGreen("Movements"),
		au.Bold(len(movements)),
	)

	printer := message.NewPrinter(language.AmericanEnglish)
	fmt.Fprintln(writer, au.BgGreen(fmt.Sprintf("%8s  %-10s %10s  %-40s", "Sequence", "Vehicle", "Distance", "Notes")).Bold())

	for _, mv := range movements {
		fmt.Fprintln(writer, printer.Sprintf(
			"%8d  %-10s %10d  %s",
			mv.Sequence(),
			mv.Kind(),
			mv.Distance(),
			strings.Join(mv.Notes(), fmt.Sprintf("\n%-33s", " ")),
		))
	}

	conn, err := sqlite3.Open(":memory:")
	if err != nil {
		return fmt.Errorf("could not open journal: %s", err.Error())
	}
	defer conn.Close()

	journal, err := data.NewJournal(conn)
	if err != nil {
		return err
	}

	runId, err := journal.Record("vehicles_cli", movements)
	if err != nil {
		return fmt.Errorf("could not record movements: %s", err.Error())
	}

	totals, err := journal.Totals(runId)
	if err != nil {
		return fmt.Errorf("could not total movements: %s", err.Error())
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, au.BgBrown(fmt.Sprintf("%-10s %8s %10s", "Vehicle", "Moves", "Distance")).Bold())
	for _, total := range totals {
		fmt.Fprintln(writer, printer.Sprintf("%-10s %8d %10d", total.Kind, total.Moves, total.Distance))
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, au.Bold(fmt.Sprintf("%-64s", "          Log output")).BgBlue())
	fmt.Fprintln(writer, r.Logs())

	return nil
}

func NewRunner(out io.Writer) Runner {
	buf := new(bytes.Buffer)
	logger := newLogger(buf, parseLevel(*logLevel))

	return &runner{
		driver: driver.NewDriver(out, logger, driver.DefaultPlan),
		logbuf: buf,
		au:     aurora.NewAurora(*color),
	}
}

func parseLevel(text string) zapcore.Level {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(text))
	if err != nil {
		return zapcore.InfoLevel
	}

	return level
}

func newLogger(buf io.Writer, level zapcore.Level) *zap.SugaredLogger {
	sink := zapcore.AddSync(buf)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		level,
	)

	unsugaredLogger := zap.New(core)

	return unsugaredLogger.Named("vehicles").Sugar()
}
