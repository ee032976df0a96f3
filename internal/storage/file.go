package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mitchleonard/pebble-path/internal"
)

// FileStorage keeps every user's journal in two JSON files and mirrors
// them in memory. Writes are debounced through background workers so a
// burst of day edits costs one disk write.
type FileStorage struct {
	days             map[string]map[string]internal.RawDay // uid -> date -> raw day
	presets          map[string]*internal.Presets          // uid -> presets
	mu               sync.RWMutex
	daysFile         string
	presetsFile      string
	saveDaysChan     chan struct{}
	savePresetsChan  chan struct{}
	shutdownChan     chan struct{}
	saveDaysDelay    time.Duration
	savePresetsDelay time.Duration
	logger           internal.Logger
}

func NewFileStorage(daysFile, presetsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		days:             make(map[string]map[string]internal.RawDay),
		presets:          make(map[string]*internal.Presets),
		daysFile:         daysFile,
		presetsFile:      presetsFile,
		saveDaysChan:     make(chan struct{}, 1),
		savePresetsChan:  make(chan struct{}, 1),
		shutdownChan:     make(chan struct{}),
		saveDaysDelay:    500 * time.Millisecond,
		savePresetsDelay: 500 * time.Millisecond,
		logger:           logger,
	}

	if err := s.loadDays(); err != nil {
		logger.Errorf("storage: failed to load days: %v", err)
		return nil, err
	}
	if err := s.loadPresets(); err != nil {
		logger.Errorf("storage: failed to load presets: %v", err)
		return nil, err
	}

	go s.saveDaysWorker()
	go s.savePresetsWorker()

	return s, nil
}

func (s *FileStorage) loadDays() error {
	file, err := os.Open(s.daysFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var days map[string]map[string]internal.RawDay
	if err := json.NewDecoder(file).Decode(&days); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if days != nil {
		s.days = days
	}
	return nil
}

func (s *FileStorage) loadPresets() error {
	file, err := os.Open(s.presetsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var presets map[string]*internal.Presets
	if err := json.NewDecoder(file).Decode(&presets); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if presets != nil {
		s.presets = presets
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) flushDays() error {
	s.mu.RLock()
	snapshot := make(map[string]map[string]internal.RawDay, len(s.days))
	for uid, m := range s.days {
		snapshot[uid] = m
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.daysFile, snapshot)
}

func (s *FileStorage) flushPresets() error {
	s.mu.RLock()
	snapshot := make(map[string]*internal.Presets, len(s.presets))
	for uid, p := range s.presets {
		snapshot[uid] = p
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.presetsFile, snapshot)
}

func (s *FileStorage) saveDaysWorker() {
	timer := time.NewTimer(s.saveDaysDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveDaysChan:
			timer.Reset(s.saveDaysDelay)
		case <-timer.C:
			if err := s.flushDays(); err != nil {
				s.logger.Errorf("storage: error saving days: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) savePresetsWorker() {
	timer := time.NewTimer(s.savePresetsDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.savePresetsChan:
			timer.Reset(s.savePresetsDelay)
		case <-timer.C:
			if err := s.flushPresets(); err != nil {
				s.logger.Errorf("storage: error saving presets: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// Close stops the workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.flushDays(); err != nil {
		return err
	}
	if err := s.flushPresets(); err != nil {
		return err
	}
	return nil
}

// --- JournalRepository ---

func (s *FileStorage) LoadAll(ctx context.Context, uid string) (map[string]internal.RawDay, *internal.Presets, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make(map[string]internal.RawDay, len(s.days[uid]))
	for date, raw := range s.days[uid] {
		days[date] = raw
	}
	var presets *internal.Presets
	if p, ok := s.presets[uid]; ok && p != nil {
		cp := *p
		presets = &cp
	}
	return days, presets, nil
}

func (s *FileStorage) SaveDays(ctx context.Context, uid string, days map[string]internal.DayEntry) error {
	raw := make(map[string]internal.RawDay, len(days))
	for date, e := range days {
		raw[date] = internal.ToRaw(e)
	}

	s.mu.Lock()
	s.days[uid] = raw
	s.mu.Unlock()

	select {
	case s.saveDaysChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) SavePresets(ctx context.Context, uid string, presets internal.Presets) error {
	s.mu.Lock()
	s.presets[uid] = &presets
	s.mu.Unlock()

	select {
	case s.savePresetsChan <- struct{}{}:
	default:
	}
	return nil
}

// --- Compile-time assertions ---
var _ JournalRepository = (*FileStorage)(nil)
