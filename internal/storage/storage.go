package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit int = 20

type Storage struct {
	ds *datastore.DataStore
}

type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Args      string    `json:"args"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything stored per guild.
type Record struct {
	Prefix              string                 `json:"prefix,omitempty"`
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
	DisabledCommands    map[string]bool        `json:"disabled_commands"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// Helper function to get or create a Record for a guild
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		newRecord := &Record{
			CommandsHistoryList: []CommandHistoryRecord{},
			DisabledCommands:    map[string]bool{},
		}
		s.ds.Add(guildID, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}
	if record.DisabledCommands == nil {
		record.DisabledCommands = map[string]bool{}
	}

	return &record, nil
}

func (s *Storage) saveGuildRecord(guildID string, record *Record) {
	s.ds.Add(guildID, record)
}

// Prefix returns the guild's command prefix, or fallback when none is set.
func (s *Storage) Prefix(guildID, fallback string) string {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil || record.Prefix == "" {
		return fallback
	}
	return record.Prefix
}

func (s *Storage) SetPrefix(guildID, prefix string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	s.saveGuildRecord(guildID, record)
	return nil
}

// LogCommand appends one executed command to the guild's bounded history.
func (s *Storage) LogCommand(guildID string, rec CommandHistoryRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	s.saveGuildRecord(guildID, record)
	return nil
}

func (s *Storage) CommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}

func (s *Storage) SetCommandDisabled(guildID, commandName string, disabled bool) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	if disabled {
		record.DisabledCommands[commandName] = true
	} else {
		delete(record.DisabledCommands, commandName)
	}
	s.saveGuildRecord(guildID, record)
	return nil
}

func (s *Storage) IsCommandDisabled(guildID, commandName string) bool {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return false
	}
	return record.DisabledCommands[commandName]
}

func (s *Storage) DisabledCommands(guildID string) ([]string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(record.DisabledCommands))
	for name := range record.DisabledCommands {
		names = append(names, name)
	}
	return names, nil
}
