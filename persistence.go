package tgdango

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/n0h4rt/tgdango/utils"
	"github.com/rs/zerolog/log"
)

// Persistence keeps the bot data and the per-chat data between runs.
type Persistence interface {
	Initialize() error
	Runner(context.Context)
	Close() error
	GetBotData() *SyncMap[string, any]
	GetChatData(string) *SyncMap[string, any]
	DelChatData(string)
}

// newPersistence returns the persistence layer selected by the configuration.
func newPersistence(config *Config) (Persistence, error) {
	switch config.PersistenceDriver {
	case "", PersistenceGob:
		return &GobPersistence{Filename: config.PersistenceFile}, nil
	case PersistenceSQLite:
		return &SQLitePersistence{Filename: config.PersistenceFile}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPersistence, config.PersistenceDriver)
	}
}

// memoryData is the in-memory state shared by the persistence layers.
type memoryData struct {
	BotData  *SyncMap[string, any]
	ChatData *SyncMap[string, *SyncMap[string, any]]
}

func (m *memoryData) reset() {
	m.BotData = NewSyncMap[string, any]()
	m.ChatData = NewSyncMap[string, *SyncMap[string, any]]()
}

// GetBotData returns the bot data.
func (m *memoryData) GetBotData() *SyncMap[string, any] {
	return m.BotData
}

// GetChatData returns the data of the given chat key, creating it when missing.
func (m *memoryData) GetChatData(key string) *SyncMap[string, any] {
	chatData, _ := m.ChatData.GetOrSet(key, NewSyncMap[string, any])

	return chatData
}

// DelChatData deletes the data of the given chat key.
func (m *memoryData) DelChatData(key string) {
	m.ChatData.Del(key)
}

// autoSave calls save every interval until the context is done.
func autoSave(ctx context.Context, interval time.Duration, name string, save func() error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.Debug().Str("Name", name).Msg("Persistence auto save.")
			if err := save(); err != nil {
				log.Error().Str("Name", name).Err(err).Msg("Persistence auto save error.")
			}
		case <-ctx.Done():
			return
		}
	}
}

// GobPersistence is responsible for loading and saving data to a gob file periodically.
// If the filename is set to an empty string, it will disable saving.
// If the interval is not positive, it will be set to 30 minutes.
type GobPersistence struct {
	memoryData
	Filename  string             // File name for the data.
	Interval  time.Duration      // Interval for auto-saving.
	cancelCtx context.CancelFunc // Function for stopping auto save operations.
	wg        sync.WaitGroup     // wg waits for the auto save routine.
}

// Load loads the data from the file.
func (p *GobPersistence) Load() error {
	if p.Filename == "" || !utils.FileExists(p.Filename) {
		return nil
	}

	file, err := os.Open(p.Filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)

	if err = decoder.Decode(p.BotData); err != nil {
		log.Error().Str("Name", p.Filename).Err(err).Msg("GobPersistence decode BotData error.")
	}

	if err = decoder.Decode(p.ChatData); err != nil {
		log.Error().Str("Name", p.Filename).Err(err).Msg("GobPersistence decode ChatData error.")
	}

	return nil
}

// Save saves the data to the file.
func (p *GobPersistence) Save() error {
	if p.Filename == "" {
		return nil
	}

	file, err := os.Create(p.Filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)

	if err = encoder.Encode(p.BotData); err != nil {
		return fmt.Errorf("encode bot data: %w", err)
	}

	if err = encoder.Encode(p.ChatData); err != nil {
		return fmt.Errorf("encode chat data: %w", err)
	}

	return nil
}

// Initialize resets the data and loads it from the file.
func (p *GobPersistence) Initialize() error {
	p.reset()

	return p.Load()
}

// Runner starts the auto save routine.
func (p *GobPersistence) Runner(ctx context.Context) {
	if p.Filename == "" {
		return
	}

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

// Close stops the auto save routine and saves the data to the file.
func (p *GobPersistence) Close() error {
	if p.cancelCtx != nil {
		p.cancelCtx()
	}
	p.wg.Wait()

	return p.Save()
}
