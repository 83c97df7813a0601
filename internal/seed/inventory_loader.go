package seed

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// LoadInventory ingests a name,quantity CSV into the medicine inventory,
// skipping names already present. A missing file is not an error; the
// inventory is then managed entirely through the dashboard.
func LoadInventory(db *sqlx.DB, csvPath string, log zerolog.Logger) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Info().Str("path", csvPath).Msg("no inventory seed file, skipping")
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Warn().Err(err).Msg("unable to read inventory header")
		return
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Warn().Err(err).Msg("unable to start inventory seed transaction")
		return
	}
	stmt, err := tx.Preparex(`INSERT INTO medicineinventory (id, name, quantity)
        SELECT ?, ?, ?
        WHERE NOT EXISTS (SELECT 1 FROM medicineinventory WHERE name = ?)`)
	if err != nil {
		log.Warn().Err(err).Msg("unable to prepare inventory insert")
		_ = tx.Rollback()
		return
	}
	defer stmt.Close()

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Msg("unable to read inventory row")
			continue
		}
		if len(record) < 2 {
			continue
		}
		name := strings.TrimSpace(record[0])
		quantity, convErr := strconv.Atoi(strings.TrimSpace(record[1]))
		if name == "" || convErr != nil || quantity < 0 {
			continue
		}

		if _, err := stmt.Exec(uuid.NewString(), name, quantity, name); err != nil {
			log.Warn().Err(err).Str("medicine", name).Msg("unable to insert medicine")
		} else {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("unable to commit inventory seed")
		return
	}
	log.Info().Int("rows", rows).Msg("seeded medicine inventory")
}
