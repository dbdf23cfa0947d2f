package db

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shamanec/GADS-sim-provider/models"
	log "github.com/sirupsen/logrus"
	r "gopkg.in/rethinkdb/rethinkdb-go.v6"
)

// ErrRecordNotFound is returned when no stored configuration matches the
// requested ID.
var ErrRecordNotFound = errors.New("record not found")

// InsertConfiguration stores the record, assigning a fresh ID when it has
// none, and returns the ID it was stored under.
func InsertConfiguration(record models.ConfigurationRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	err := r.Table(configurationsTable).Insert(record, r.InsertOpts{Conflict: "replace"}).Exec(session)
	if err != nil {
		log.WithFields(log.Fields{
			"event": "insert_configuration_db",
		}).Error("Insert db fail: " + err.Error())
		return "", err
	}
	return record.ID, nil
}

// GetConfiguration reads one stored configuration record by ID.
func GetConfiguration(id string) (models.ConfigurationRecord, error) {
	cursor, err := r.Table(configurationsTable).Get(id).Run(session)
	if err != nil {
		return models.ConfigurationRecord{}, err
	}
	defer cursor.Close()

	if cursor.IsNil() {
		return models.ConfigurationRecord{}, ErrRecordNotFound
	}

	var record models.ConfigurationRecord
	if err := cursor.One(&record); err != nil {
		return models.ConfigurationRecord{}, err
	}
	return record, nil
}

// GetConfigurations reads all stored configuration records.
func GetConfigurations() ([]models.ConfigurationRecord, error) {
	cursor, err := r.Table(configurationsTable).Run(session)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	records := []models.ConfigurationRecord{}
	if err := cursor.All(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteConfiguration removes one stored configuration record by ID.
func DeleteConfiguration(id string) error {
	response, err := r.Table(configurationsTable).Get(id).Delete().RunWrite(session)
	if err != nil {
		return err
	}
	if response.Deleted == 0 {
		return ErrRecordNotFound
	}
	return nil
}
