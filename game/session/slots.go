package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/playcashflow/cashflow-tycoon/game/engine"
	"github.com/playcashflow/cashflow-tycoon/game/service"
)

// MaxSaveSlots caps the number of named save slots; saving beyond the
// cap evicts the oldest slot.
const MaxSaveSlots = 10

// SavedGameData is the JSON structure for a named save slot
type SavedGameData struct {
	Version   int               `json:"version"`
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	GameState *engine.GameState `json:"game_state"`
}

// SlotStore keeps named game-state snapshots on disk, one JSON file per
// slot. It implements service.SlotManager.
type SlotStore struct {
	savesDir string
	mu       sync.Mutex
}

// NewSlotStore creates a slot store rooted at savesDir
func NewSlotStore(savesDir string) (*SlotStore, error) {
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create saves directory: %w", err)
	}
	return &SlotStore{savesDir: savesDir}, nil
}

// Save writes a named snapshot of the game state. When the store is at
// capacity the oldest slot is evicted first.
func (ss *SlotStore) Save(name string, state *engine.GameState) (*service.SaveInfo, error) {
	if state == nil {
		return nil, fmt.Errorf("game state cannot be nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Save %s", time.Now().Format("2006-01-02 15:04"))
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	slots, err := ss.readAll()
	if err != nil {
		return nil, err
	}

	// Evict oldest slots until there is room
	for len(slots) >= MaxSaveSlots {
		oldest := slots[0]
		for _, slot := range slots[1:] {
			if slot.Date.Before(oldest.Date) {
				oldest = slot
			}
		}
		if err := os.Remove(ss.slotPath(oldest.ID)); err != nil {
			return nil, fmt.Errorf("failed to evict save slot %s: %w", oldest.ID, err)
		}
		remaining := slots[:0]
		for _, slot := range slots {
			if slot.ID != oldest.ID {
				remaining = append(remaining, slot)
			}
		}
		slots = remaining
	}

	data := SavedGameData{
		Version:   engine.SnapshotVersion,
		ID:        uuid.NewString(),
		Name:      name,
		Date:      time.Now(),
		GameState: state,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save data: %w", err)
	}
	if err := os.WriteFile(ss.slotPath(data.ID), jsonData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write save file: %w", err)
	}

	return saveInfo(&data), nil
}

// Load reads the game state stored in a slot
func (ss *SlotStore) Load(saveID string) (*engine.GameState, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	data, err := ss.readSlot(saveID)
	if err != nil {
		return nil, err
	}
	return data.GameState, nil
}

// List returns all save slots, newest first
func (ss *SlotStore) List() ([]*service.SaveInfo, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	slots, err := ss.readAll()
	if err != nil {
		return nil, err
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Date.After(slots[j].Date)
	})

	infos := make([]*service.SaveInfo, 0, len(slots))
	for i := range slots {
		infos = append(infos, saveInfo(&slots[i]))
	}
	return infos, nil
}

// Delete removes a save slot
func (ss *SlotStore) Delete(saveID string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	path := ss.slotPath(saveID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("save slot not found: %s", saveID)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove save file: %w", err)
	}
	return nil
}

func (ss *SlotStore) slotPath(saveID string) string {
	return filepath.Join(ss.savesDir, saveID+".json")
}

func (ss *SlotStore) readSlot(saveID string) (*SavedGameData, error) {
	jsonData, err := os.ReadFile(ss.slotPath(saveID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("save slot not found: %s", saveID)
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var data SavedGameData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to parse save file: %w", err)
	}
	if data.Version != engine.SnapshotVersion {
		return nil, fmt.Errorf("save %s has unsupported snapshot version %d (supported v%d)",
			saveID, data.Version, engine.SnapshotVersion)
	}
	return &data, nil
}

func (ss *SlotStore) readAll() ([]SavedGameData, error) {
	entries, err := os.ReadDir(ss.savesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read saves directory: %w", err)
	}

	var slots []SavedGameData
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := ss.readSlot(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			// Skip unreadable slots rather than failing the whole listing
			continue
		}
		slots = append(slots, *data)
	}
	return slots, nil
}

func saveInfo(data *SavedGameData) *service.SaveInfo {
	info := &service.SaveInfo{
		ID:      data.ID,
		Name:    data.Name,
		Date:    data.Date,
		Version: data.Version,
	}
	if data.GameState != nil {
		info.Round = data.GameState.Round
		info.Players = len(data.GameState.Players)
	}
	return info
}
