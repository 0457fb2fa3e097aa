package history

import (
	"errors"
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/lepinkainen/authorscout/internal/storage"
)

type memSlot struct {
	data    []byte
	present bool
	saves   int
	saveErr error
	loadErr error
}

func (m *memSlot) Load() ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.present {
		return nil, storage.ErrSlotNotFound
	}
	return m.data, nil
}

func (m *memSlot) Save(data []byte) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	m.present = true
	return nil
}

func (m *memSlot) Remove() error {
	m.data, m.present = nil, false
	return nil
}

func TestRecordPrependsAndPersists(t *testing.T) {
	slot := &memSlot{}
	s := Load(slot)

	changed, err := s.Record("Tolkien")
	assert.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.Record("Le Guin")
	assert.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, []string{"Le Guin", "Tolkien"}, s.List())
	assert.Equal(t, `["Le Guin","Tolkien"]`, string(slot.data))
}

func TestRecordDuplicateIsNotPromoted(t *testing.T) {
	slot := &memSlot{}
	s := Load(slot)
	for _, q := range []string{"a", "b", "c"} {
		_, err := s.Record(q)
		assert.NoError(t, err)
	}
	saves := slot.saves

	changed, err := s.Record("a")
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"c", "b", "a"}, s.List())
	assert.Equal(t, saves, slot.saves, "duplicate must not write")
}

func TestRecordEvictsOldest(t *testing.T) {
	s := Load(&memSlot{})
	for _, q := range []string{"1", "2", "3", "4", "5", "6"} {
		_, err := s.Record(q)
		assert.NoError(t, err)
	}
	assert.Equal(t, []string{"6", "5", "4", "3", "2"}, s.List())
}

func TestRecordIgnoresBlank(t *testing.T) {
	slot := &memSlot{}
	s := Load(slot)

	changed, err := s.Record("   ")
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 0, slot.saves)
	assert.Equal(t, 0, len(s.List()))
}

func TestRecordKeepsMemoryOnSaveFailure(t *testing.T) {
	slot := &memSlot{saveErr: errors.New("disk full")}
	s := Load(slot)

	changed, err := s.Record("Pratchett")
	assert.Error(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Pratchett"}, s.List())
}

func TestLoadRestoresAcrossRestarts(t *testing.T) {
	slot := storage.NewFileSlot(t.TempDir() + "/history.json")

	first := Load(slot)
	for _, q := range []string{"x", "y"} {
		_, err := first.Record(q)
		assert.NoError(t, err)
	}

	second := Load(slot)
	assert.Equal(t, []string{"y", "x"}, second.List())
}

func TestLoadCorruptDataStartsEmpty(t *testing.T) {
	tests := []struct {
		name string
		slot *memSlot
	}{
		{"not json", &memSlot{present: true, data: []byte("{oops")}},
		{"wrong shape", &memSlot{present: true, data: []byte(`{"a":1}`)}},
		{"numbers", &memSlot{present: true, data: []byte(`[1,2]`)}},
		{"read error", &memSlot{loadErr: errors.New("io")}},
		{"absent", &memSlot{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Load(tt.slot)
			assert.Equal(t, 0, len(s.List()))
		})
	}
}

func TestLoadSanitizes(t *testing.T) {
	slot := &memSlot{present: true, data: []byte(`["a"," ","a","b","c","d","e","f"]`)}
	s := Load(slot)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, s.List())
}

func TestClear(t *testing.T) {
	slot := &memSlot{}
	s := Load(slot)
	_, err := s.Record("a")
	assert.NoError(t, err)

	assert.NoError(t, s.Clear())
	assert.Equal(t, 0, len(s.List()))
	assert.False(t, slot.present)
}

func TestListIsACopy(t *testing.T) {
	s := Load(&memSlot{})
	_, err := s.Record("a")
	assert.NoError(t, err)

	l := s.List()
	l[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.List())
}

func TestSuggest(t *testing.T) {
	s := Load(&memSlot{})
	for _, q := range []string{"Terry Pratchett", "Tolkien", "Ursula K. Le Guin"} {
		_, err := s.Record(q)
		assert.NoError(t, err)
	}

	assert.Equal(t, []string{"Tolkien"}, s.Suggest("tolk"))
	assert.Equal(t, []string{"Ursula K. Le Guin"}, s.Suggest("LEGUIN"))
	assert.Equal(t, []string{}, s.Suggest("zzz"))
	assert.Equal(t, []string(nil), s.Suggest(" "))
}

func TestConcurrentRecord(t *testing.T) {
	s := Load(storage.NewFileSlot(t.TempDir() + "/h.json"))

	var wg sync.WaitGroup
	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			_, _ = s.Record(q)
		}(q)
	}
	wg.Wait()

	assert.Equal(t, Capacity, len(s.List()))
}
