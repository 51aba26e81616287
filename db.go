package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Op string

const (
	PUSH    Op = "push"
	POP     Op = "pop"
	ENQUEUE Op = "enqueue"
	DEQUEUE Op = "dequeue"
	CLEAR   Op = "clear"
	REVERSE Op = "reverse"

	STACK = "stack"
	QUEUE = "queue"

	memoryDSN = ":memory:"
)

// Recorder is what the shell needs from a journal
type Recorder interface {
	Record(op Op, container string, n *Node) error
	RecordBulk(op Op, container string, nodes []*Node) error
	History(limit int) ([]Entry, error)
}

// Entry is one row of the operation log
type Entry struct {
	ID        string
	Session   string
	Op        Op
	Container string
	NodeID    string // Empty for bulk operations on an empty container
	Record    Record
	TSCreated time.Time
}

// Journal is an audit trail of container operations for the current run.
// Container state is never rebuilt from it.
type Journal struct {
	db      *sql.DB
	session string
}

func OpenJournal(path string) (*Journal, error) {
	if path != memoryDSN {
		// Nothing carries over from a previous run
		os.Remove(path)
	}

	log.Println("INFO: Opening journal", path)
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)

	j := &Journal{db: conn, session: uuid.New().String()}
	if err = j.createDB(); err != nil {
		conn.Close()
		return nil, err
	}
	log.Printf("INFO: Journal ready for session '%s'\n", j.session)
	return j, nil
}

func (j *Journal) Session() string {
	return j.session
}

func (j *Journal) Close() error {
	return j.db.Close()
}

const insertOp = `insert into op_log(id, session, op, container, node_id, first_name, last_name, puid, age, ts_created) values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (j *Journal) Record(op Op, container string, n *Node) error {
	nodeID, r := nodeColumns(n)
	if _, err := j.db.Exec(insertOp, uuid.New().String(), j.session, op, container, nodeID, r.FirstName, r.LastName, r.PUID, r.Age, time.Now()); err != nil {
		log.Println("ERROR:", err)
		return err
	}
	log.Printf("INFO: Journaled '%s' on %s for node '%s'\n", op, container, nodeID)
	return nil
}

// RecordBulk writes one row per node in a single transaction. An empty slice
// still leaves one row so the operation itself shows up in the history.
func (j *Journal) RecordBulk(op Op, container string, nodes []*Node) error {
	if len(nodes) == 0 {
		return j.Record(op, container, nil)
	}

	tx, err := j.db.Begin()
	if err != nil {
		log.Println("ERROR: Beginning transaction", err)
		return err
	}

	stmt, err := tx.Prepare(insertOp)
	if err != nil {
		log.Println("ERROR: Preparing statement", err)
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	ts := time.Now()
	for _, n := range nodes {
		nodeID, r := nodeColumns(n)
		if _, err := stmt.Exec(uuid.New().String(), j.session, op, container, nodeID, r.FirstName, r.LastName, r.PUID, r.Age, ts); err != nil {
			log.Println("ERROR: Inserting journal entry", err)
			tx.Rollback()
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Println("ERROR: Committing transaction", err)
		return err
	}
	log.Printf("INFO: Journaled bulk '%s' on %s for %d node(s)\n", op, container, len(nodes))
	return nil
}

// History returns up to limit entries, newest first
func (j *Journal) History(limit int) ([]Entry, error) {
	q := `
	select id, session, op, container, node_id, first_name, last_name, puid, age, ts_created
	from op_log
	order by seq desc
	limit ?
	`
	rows, err := j.db.Query(q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []Entry{}
	for rows.Next() {
		e := Entry{}
		err := rows.Scan(&e.ID, &e.Session, &e.Op, &e.Container, &e.NodeID, &e.Record.FirstName, &e.Record.LastName, &e.Record.PUID, &e.Record.Age, &e.TSCreated)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

func nodeColumns(n *Node) (string, Record) {
	if n == nil {
		return "", Record{}
	}
	return n.ID.String(), n.Record()
}

// Create DB tables
func (j *Journal) createDB() error {
	_, err := j.db.Exec(`
	CREATE TABLE IF NOT EXISTS op_log(
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session TEXT NOT NULL,
		op TEXT NOT NULL,
		container TEXT NOT NULL,
		node_id TEXT NOT NULL, -- Empty when a bulk op touched no nodes
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		puid INTEGER NOT NULL,
		age INTEGER NOT NULL,
		ts_created DATETIME NOT NULL
	);
	`)
	return err
}
