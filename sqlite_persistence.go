package tgdango

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/gob"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS bot_data (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS chat_data (
	chat_key TEXT PRIMARY KEY,
	data     BLOB NOT NULL
);`

// SQLitePersistence keeps the data in a SQLite database, one gob blob per chat.
//
// The data lives in memory and is written back every Interval and on Close.
// If the interval is not positive, it will be set to 30 minutes.
type SQLitePersistence struct {
	memoryData
	Filename  string             // Filename is the database file, ":memory:" is allowed.
	Interval  time.Duration      // Interval for auto-saving.
	db        *sql.DB            // db is opened by Initialize.
	cancelCtx context.CancelFunc // Function for stopping auto save operations.
	wg        sync.WaitGroup     // wg waits for the auto save routine.
}

// Initialize opens the database, creates the tables and loads the data.
func (p *SQLitePersistence) Initialize() error {
	p.reset()

	if p.Filename == "" {
		p.Filename = ":memory:"
	}

	db, err := sql.Open("sqlite", p.Filename)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writes.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}
	p.db = db

	return p.Load()
}

// Load reads every row into memory. Rows that fail to decode are logged and skipped.
func (p *SQLitePersistence) Load() error {
	var blob []byte
	err := p.db.QueryRow(`SELECT data FROM bot_data WHERE id = 1`).Scan(&blob)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return fmt.Errorf("load bot data: %w", err)
	default:
		if err = gob.NewDecoder(bytes.NewReader(blob)).Decode(p.BotData); err != nil {
			log.Error().Str("Name", p.Filename).Err(err).Msg("SQLitePersistence decode BotData error.")
		}
	}

	rows, err := p.db.Query(`SELECT chat_key, data FROM chat_data`)
	if err != nil {
		return fmt.Errorf("load chat data: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err = rows.Scan(&key, &blob); err != nil {
			return fmt.Errorf("scan chat data: %w", err)
		}

		chatData := NewSyncMap[string, any]()
		if err = gob.NewDecoder(bytes.NewReader(blob)).Decode(chatData); err != nil {
			log.Error().Str("Name", p.Filename).Str("Chat", key).Err(err).Msg("SQLitePersistence decode ChatData error.")
			continue
		}
		p.ChatData.Set(key, chatData)
	}

	return rows.Err()
}

// Save writes the in-memory data back in one transaction.
func (p *SQLitePersistence) Save() error {
	if p.db == nil {
		return nil
	}

	botBlob, err := encodeGob(p.BotData)
	if err != nil {
		return fmt.Errorf("encode bot data: %w", err)
	}

	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`INSERT INTO bot_data (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, botBlob); err != nil {
		return fmt.Errorf("save bot data: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM chat_data`); err != nil {
		return fmt.Errorf("clear chat data: %w", err)
	}

	var saveErr error
	p.ChatData.Range(func(key string, chatData *SyncMap[string, any]) bool {
		var blob []byte
		if blob, saveErr = encodeGob(chatData); saveErr != nil {
			saveErr = fmt.Errorf("encode chat data %s: %w", key, saveErr)
			return false
		}
		if _, saveErr = tx.Exec(`INSERT INTO chat_data (chat_key, data) VALUES (?, ?)`, key, blob); saveErr != nil {
			saveErr = fmt.Errorf("save chat data %s: %w", key, saveErr)
			return false
		}
		return true
	})
	if saveErr != nil {
		return saveErr
	}

	return tx.Commit()
}

// Runner starts the auto save routine.
func (p *SQLitePersistence) Runner(ctx context.Context) {
	if p.Interval <= 0 {
		p.Interval = DEFAULT_SAVE_INTERVAL
	}

	ctx, p.cancelCtx = context.WithCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		autoSave(ctx, p.Interval, p.Filename, p.Save)
	}()
}

// Close stops the auto save routine, saves the data and closes the database.
func (p *SQLitePersistence) Close() error {
	if p.cancelCtx != nil {
		p.cancelCtx()
	}
	p.wg.Wait()
	if p.db == nil {
		return nil
	}

	err := p.Save()
	if closeErr := p.db.Close(); err == nil {
		err = closeErr
	}
	p.db = nil

	return err
}

func encodeGob(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
