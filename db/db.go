package db

import (
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	r "gopkg.in/rethinkdb/rethinkdb-go.v6"
)

var session *r.Session

const (
	// Database is the RethinkDB database the provider stores its data in.
	Database = "gads"

	configurationsTable = "sim_configurations"
	logsTable           = "provider_logs"
)

// New creates the shared RethinkDB connection and makes sure the provider
// tables exist. Fails hard when the DB is unreachable - the provider cannot
// run without its store.
func New(address string) {
	var err error = nil
	session, err = r.Connect(r.ConnectOpts{
		Address:  address,
		Database: Database,
	})

	if err != nil {
		panic("Could not connect to db on " + address + ", err: " + err.Error())
	}

	r.SetTags("rethinkdb", "json")
	ensureTables()

	go checkDBConnection()
}

// Session exposes the shared connection, e.g. for the logger DB hook.
func Session() *r.Session {
	return session
}

// Check if the DB connection is alive periodically and attempt to reconnect if not
func checkDBConnection() {
	for {
		if !session.IsConnected() {
			err := session.Reconnect()
			if err != nil {
				log.WithFields(log.Fields{
					"event": "db_connection",
				}).Error("DB connection is not alive and reconnecting failed: " + err.Error())
			}
		}
		time.Sleep(2 * time.Second)
	}
}

// Create the provider tables if the database does not have them yet
func ensureTables() {
	cursor, err := r.TableList().Run(session)
	if err != nil {
		panic("Could not list the db tables, err: " + err.Error())
	}
	defer cursor.Close()

	var tables []string
	if err := cursor.All(&tables); err != nil {
		panic("Could not read the db table list, err: " + err.Error())
	}

	for _, table := range []string{configurationsTable, logsTable} {
		if slices.Contains(tables, table) {
			continue
		}
		if err := r.TableCreate(table).Exec(session); err != nil {
			panic("Could not create the `" + table + "` db table, err: " + err.Error())
		}
	}
}
