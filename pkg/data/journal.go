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

package data

import (
	"fmt"
	"strings"
	"time"

	"github.com/bvinc/go-sqlite-lite/sqlite3"

	"vehicles/pkg/driver"
	"vehicles/pkg/vehicle"
)

// Total aggregates the movements of one vehicle kind within a run.
type Total struct {
	Kind     vehicle.Kind
	Moves    int
	Distance int64
}

type Journal interface {
	Record(origin string, movements []driver.Movement) (runId int64, err error)
	Totals(runId int64) ([]Total, error)
}

type journal struct {
	conn *sqlite3.Conn
}

func (j *journal) Record(origin string, movements []driver.Movement) (runId int64, err error) {
	runId, err = j.run(origin, len(movements))
	if err != nil {
		return runId, err
	}

	err = j.conn.WithTx(func() error {
		return j.movements(runId, movements)
	})
	if err != nil {
		return runId, err
	}

	return runId, nil
}

func (j *journal) run(origin string, steps int) (runId int64, err error) {
	runStmt, err := j.conn.Prepare(`insert into runs(recorded, origin, steps) values (?, ?, ?);`)
	if err != nil {
		return -1, err
	}
	defer runStmt.Close()

	err = runStmt.Exec(time.Now().Format(time.RFC3339), origin, steps)
	if err != nil {
		return -1, err
	}

	return j.conn.LastInsertRowID(), nil
}

func (j *journal) movements(runId int64, movements []driver.Movement) error {
	kindStmt, err := j.conn.Prepare(`insert into kinds(name) values (?) on conflict do nothing`)
	if err != nil {
		return err
	}
	defer kindStmt.Close()

	movementStmt, err := j.conn.Prepare(`insert into movements(
            run_id
          , sequence
          , kind
          , distance
          , notes
        ) values (
              ?
            , ?
            , (select id from kinds where name = ?)
            , ?
            , ?)
    `)
	if err != nil {
		return err
	}
	defer movementStmt.Close()

	for _, mv := range movements {
		err = kindStmt.Exec(string(mv.Kind()))
		if err != nil {
			return err
		}

		err = movementStmt.Exec(
			runId,
			mv.Sequence(),
			string(mv.Kind()),
			mv.Distance(),
			strings.Join(mv.Notes(), "; "),
		)
		if err != nil {
			return fmt.Errorf("could not record movement %d: %s", mv.Sequence(), err.Error())
		}
	}

	return nil
}

func (j *journal) Totals(runId int64) ([]Total, error) {
	totalsStmt, err := j.conn.Prepare(TotalsQuery, runId)
	if err != nil {
		return nil, err
	}
	defer totalsStmt.Close()

	var kind string
	var moves int
	var distance int64
	totals := make([]Total, 0)

	for {
		hasRow, err := totalsStmt.Step()
		if err != nil {
			return nil, err
		}

		if !hasRow {
			break
		}

		err = totalsStmt.Scan(&kind, &moves, &distance)
		if err != nil {
			return nil, err
		}

		totals = append(totals, Total{
			Kind:     vehicle.Kind(kind),
			Moves:    moves,
			Distance: distance,
		})
	}

	return totals, nil
}

func NewJournal(conn *sqlite3.Conn) (Journal, error) {
	err := conn.Exec(Schema)
	if err != nil {
		return nil, fmt.Errorf("could not apply journal schema: %s", err.Error())
	}

	return &journal{
		conn: conn,
	}, nil
}
